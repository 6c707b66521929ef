package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/automeet-app/automeet/pkg/config"
)

// GeminiClient is a minimal client for the Gemini API, covering file upload
// and content generation used by the transcription and summarization flows.
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGeminiClient creates a Gemini client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GEMINI_API_URL")
		if base == "" {
			base = "https://generativelanguage.googleapis.com"
		}
	}

	model := "gemini-1.5-pro"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	timeout := 120 * time.Second
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// uploadResponse is the shape returned by the file upload endpoint
type uploadResponse struct {
	File struct {
		Name string `json:"name"`
		URI  string `json:"uri"`
	} `json:"file"`
}

// Part is one piece of a content request: either text or a file reference
type Part struct {
	Text     string    `json:"text,omitempty"`
	FileData *FileData `json:"file_data,omitempty"`
}

// FileData references a previously uploaded file by URI
type FileData struct {
	MimeType string `json:"mime_type"`
	FileURI  string `json:"file_uri"`
}

// GenerateRequest is the shape for generateContent requests
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content groups the parts of a single turn
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerationConfig carries the response shaping options we use
type GenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

// GenerateResponse is a minimal response shape
type GenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// UploadFile streams the audio to the Gemini file endpoint and returns the
// file URI to reference in later generateContent calls.
func (g *GeminiClient) UploadFile(ctx context.Context, r io.Reader, mimeType string) (string, error) {
	endpoint := fmt.Sprintf("%s/upload/v1beta/files?key=%s", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, r)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Goog-Upload-Protocol", "raw")
	req.Header.Set("Content-Type", mimeType)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("gemini upload returned status %d", resp.StatusCode)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", err
	}
	if ur.File.URI == "" {
		return "", fmt.Errorf("gemini upload returned no file uri")
	}
	return ur.File.URI, nil
}

// GenerateContentFromFile prompts the model over an uploaded file and returns
// the first candidate's text.
func (g *GeminiClient) GenerateContentFromFile(ctx context.Context, fileURI, mimeType, prompt string) (string, error) {
	reqBody := GenerateRequest{
		Contents: []Content{{
			Parts: []Part{
				{FileData: &FileData{MimeType: mimeType, FileURI: fileURI}},
				{Text: prompt},
			},
		}},
	}
	return g.generate(ctx, reqBody)
}

// GenerateJSON prompts the model with plain text and asks for a JSON-typed
// response body.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	reqBody := GenerateRequest{
		Contents: []Content{{
			Parts: []Part{{Text: prompt}},
		}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0.3,
		},
	}
	return g.generate(ctx, reqBody)
}

func (g *GeminiClient) generate(ctx context.Context, reqBody GenerateRequest) (string, error) {
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
