package ai

import (
	"testing"
)

func TestParseSummaryResponse_Plain(t *testing.T) {
	p := NewParser()
	payload, err := p.ParseSummaryResponse(`{"summary":"We planned the release.","decisions":["Ship Friday"],"action_items":[{"description":"Write changelog","owner":"Dana","deadline":"Thursday"}]}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if payload.Summary != "We planned the release." {
		t.Fatalf("unexpected summary %q", payload.Summary)
	}
	if len(payload.Decisions) != 1 || payload.Decisions[0] != "Ship Friday" {
		t.Fatalf("unexpected decisions %v", payload.Decisions)
	}
	if len(payload.ActionItems) != 1 || payload.ActionItems[0].Owner != "Dana" {
		t.Fatalf("unexpected action items %v", payload.ActionItems)
	}
}

func TestParseSummaryResponse_MarkdownFenced(t *testing.T) {
	p := NewParser()
	raw := "```json\n{\"summary\":\"Short sync.\",\"decisions\":[],\"action_items\":[]}\n```"
	payload, err := p.ParseSummaryResponse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if payload.Summary != "Short sync." {
		t.Fatalf("unexpected summary %q", payload.Summary)
	}
}

func TestParseSummaryResponse_BareFence(t *testing.T) {
	p := NewParser()
	raw := "```\n{\"summary\":\"Standup.\"}\n```"
	payload, err := p.ParseSummaryResponse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if payload.Summary != "Standup." {
		t.Fatalf("unexpected summary %q", payload.Summary)
	}
}

func TestParseSummaryResponse_MissingSummary(t *testing.T) {
	p := NewParser()
	if _, err := p.ParseSummaryResponse(`{"decisions":["a"]}`); err == nil {
		t.Fatal("expected error for missing summary")
	}
}

func TestParseSummaryResponse_InvalidJSON(t *testing.T) {
	p := NewParser()
	if _, err := p.ParseSummaryResponse("The meeting went well, everyone agreed."); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}
