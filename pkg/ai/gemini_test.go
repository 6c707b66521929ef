package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/automeet-app/automeet/pkg/config"
)

func TestUploadFile_Success(t *testing.T) {
	// Mock Gemini file endpoint
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "audio/mp3" {
			t.Fatalf("unexpected content type %s", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "fake-audio-bytes" {
			t.Fatalf("unexpected body %q", body)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"file": {"name": "files/abc123", "uri": "https://files.example/abc123"},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	uri, err := client.UploadFile(context.Background(), strings.NewReader("fake-audio-bytes"), "audio/mp3")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if uri != "https://files.example/abc123" {
		t.Fatalf("unexpected uri %s", uri)
	}
}

func TestGenerateContentFromFile_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(payload.Contents) != 1 || len(payload.Contents[0].Parts) != 2 {
			t.Fatalf("unexpected payload shape: %+v", payload)
		}
		if payload.Contents[0].Parts[0].FileData.FileURI != "https://files.example/abc123" {
			t.Fatalf("file uri not forwarded")
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "hello transcript"}},
				}},
			},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	text, err := client.GenerateContentFromFile(context.Background(), "https://files.example/abc123", "audio/mp3", "Transcribe this recording")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if text != "hello transcript" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestGenerateJSON_SetsResponseMimeType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.GenerationConfig == nil || payload.GenerationConfig.ResponseMimeType != "application/json" {
			t.Fatalf("expected json response mime type, got %+v", payload.GenerationConfig)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": `{"summary":"ok"}`}},
				}},
			},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	out, err := client.GenerateJSON(context.Background(), "Summarize this transcript")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != `{"summary":"ok"}` {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGenerate_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewGeminiClient(&config.GeminiConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.GenerateJSON(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on 429 status")
	}
}
