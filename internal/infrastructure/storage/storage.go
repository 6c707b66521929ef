package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// Store abstracts where uploaded audio lives. Save returns a URL that is
// persisted on the meeting row; Open resolves that same URL back to the
// object's bytes.
type Store interface {
	Save(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Open(ctx context.Context, audioURL string) (io.ReadCloser, error)
}

// allowedAudioExtensions are the upload formats accepted by the API
var allowedAudioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".webm": true,
	".ogg":  true,
	".flac": true,
}

// IsAllowedAudio reports whether the filename carries an accepted audio extension
func IsAllowedAudio(filename string) bool {
	return allowedAudioExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ContentTypeFor maps a filename extension to the mime type sent to the
// transcription provider. Anything unrecognized is treated as mp3.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".webm":
		return "audio/webm"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/m4a"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	default:
		return "audio/mp3"
	}
}

// objectNameFromURL extracts the final path segment of a stored audio URL,
// ignoring any query string.
func objectNameFromURL(audioURL string) string {
	if i := strings.IndexByte(audioURL, '?'); i >= 0 {
		audioURL = audioURL[:i]
	}
	if i := strings.LastIndexByte(audioURL, '/'); i >= 0 {
		audioURL = audioURL[i+1:]
	}
	return audioURL
}
