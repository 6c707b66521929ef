package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionItemPayload is one action item as returned by the model
type ActionItemPayload struct {
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Deadline    string `json:"deadline"`
}

// SummaryPayload is the structured analysis the model is prompted to return
type SummaryPayload struct {
	Summary     string              `json:"summary"`
	Decisions   []string            `json:"decisions"`
	ActionItems []ActionItemPayload `json:"action_items"`
}

// Parser handles parsing and validation of model responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseSummaryResponse parses the JSON response from the model into a
// SummaryPayload
func (p *Parser) ParseSummaryResponse(jsonString string) (*SummaryPayload, error) {
	// Extract JSON from response (the model might wrap it in markdown code blocks)
	jsonString = extractJSON(jsonString)

	var result SummaryPayload
	if err := json.Unmarshal([]byte(jsonString), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	// Validate required fields
	if result.Summary == "" {
		return nil, fmt.Errorf("missing summary in response")
	}

	return &result, nil
}

func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
