package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrintVersionDefaultLine(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf, false, false)
	out := buf.String()
	if !strings.Contains(out, versionTagline) {
		t.Fatalf("missing tagline in %q", out)
	}
	if !strings.Contains(out, "build trivia") {
		t.Fatalf("bare invocation must hint at the metadata flags: %q", out)
	}
	if strings.Contains(out, "commit:") || strings.Contains(out, "built:") {
		t.Fatalf("metadata printed without being asked for: %q", out)
	}
}

func TestPrintVersionWithMetadata(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf, true, true)
	out := buf.String()
	if !strings.Contains(out, "commit:") || !strings.Contains(out, "built:") {
		t.Fatalf("expected commit and build lines in %q", out)
	}
	if strings.Contains(out, "build trivia") {
		t.Fatalf("hint must vanish once metadata is shown: %q", out)
	}
}

func TestPrintVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printVersionJSON(&buf, true, false); err != nil {
		t.Fatalf("printVersionJSON: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["tool"] != "volt" {
		t.Fatalf("tool = %q", got["tool"])
	}
	if got["version"] == "" {
		t.Fatalf("version must never be empty")
	}
	if got["git_commit"] == "" {
		t.Fatalf("requested commit must fall back to unknown")
	}
	if _, ok := got["build_date"]; ok {
		t.Fatalf("unrequested date must be omitted: %v", got)
	}
}

func TestOrUnknown(t *testing.T) {
	if got := orUnknown("  "); got != "unknown" {
		t.Fatalf("orUnknown blank = %q", got)
	}
	if got := orUnknown("abc123"); got != "abc123" {
		t.Fatalf("orUnknown = %q", got)
	}
}
