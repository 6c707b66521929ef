package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/automeet-app/automeet/pkg/config"
)

// LocalStore keeps uploaded audio on the local filesystem. Files are served
// back by the HTTP layer under /uploads.
type LocalStore struct {
	dir       string
	publicURL string
}

// NewLocalStore creates a local store rooted at the configured directory
func NewLocalStore(cfg *config.StorageConfig) (*LocalStore, error) {
	dir := cfg.LocalDir
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, publicURL: strings.TrimRight(cfg.PublicURL, "/")}, nil
}

// Dir returns the directory files are written to
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes the audio to disk and returns its public URL
func (s *LocalStore) Save(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	// objectName is generated from the meeting id, never from user input
	if objectName != filepath.Base(objectName) {
		return "", fmt.Errorf("invalid object name %q", objectName)
	}

	path := filepath.Join(s.dir, objectName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.publicURL + "/uploads/" + objectName, nil
}

// Open resolves a stored audio URL back to the file on disk
func (s *LocalStore) Open(ctx context.Context, audioURL string) (io.ReadCloser, error) {
	name := objectNameFromURL(audioURL)
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid audio URL %q", audioURL)
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}
