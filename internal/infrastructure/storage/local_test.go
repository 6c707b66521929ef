package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/automeet-app/automeet/pkg/config"
)

func TestLocalStore_SaveAndOpen(t *testing.T) {
	store, err := NewLocalStore(&config.StorageConfig{
		LocalDir:  t.TempDir(),
		PublicURL: "http://localhost:8080",
	})
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	url, err := store.Save(context.Background(), "meeting-1.mp3", strings.NewReader("audio-bytes"), 11, "audio/mp3")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if url != "http://localhost:8080/uploads/meeting-1.mp3" {
		t.Fatalf("unexpected url %s", url)
	}

	rc, err := store.Open(context.Background(), url)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer rc.Close()

	body, _ := io.ReadAll(rc)
	if string(body) != "audio-bytes" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store, err := NewLocalStore(&config.StorageConfig{LocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}
	if _, err := store.Open(context.Background(), "/uploads/nope.mp3"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLocalStore_RejectsPathTraversal(t *testing.T) {
	store, err := NewLocalStore(&config.StorageConfig{LocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}
	if _, err := store.Save(context.Background(), "../escape.mp3", strings.NewReader("x"), 1, "audio/mp3"); err == nil {
		t.Fatal("expected error for traversal object name")
	}
}

func TestIsAllowedAudio(t *testing.T) {
	cases := map[string]bool{
		"talk.mp3":  true,
		"talk.WAV":  true,
		"talk.webm": true,
		"talk.txt":  false,
		"talk":      false,
	}
	for name, want := range cases {
		if got := IsAllowedAudio(name); got != want {
			t.Errorf("IsAllowedAudio(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	if got := ContentTypeFor("a.webm"); got != "audio/webm" {
		t.Fatalf("unexpected type %s", got)
	}
	if got := ContentTypeFor("a.mp3"); got != "audio/mp3" {
		t.Fatalf("unexpected type %s", got)
	}
	if got := ContentTypeFor("a.unknown"); got != "audio/mp3" {
		t.Fatalf("unexpected fallback %s", got)
	}
}
