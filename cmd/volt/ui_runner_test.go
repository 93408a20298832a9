package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseProgressChoice(t *testing.T) {
	cases := []struct {
		raw  string
		want progressChoice
	}{
		{"", progressAuto},
		{"auto", progressAuto},
		{"AUTO", progressAuto},
		{" on ", progressForced},
		{"off", progressDisabled},
	}
	for _, c := range cases {
		got, err := parseProgressChoice(c.raw)
		if err != nil {
			t.Fatalf("parseProgressChoice(%q): %v", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("parseProgressChoice(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
	if _, err := parseProgressChoice("fancy"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestProgressChoiceResolvesAgainstWriter(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if !progressForced.wantTUI(f) {
		t.Fatalf("forced choice must render regardless of the writer")
	}
	if progressDisabled.wantTUI(f) {
		t.Fatalf("disabled choice must never render")
	}
	if progressAuto.wantTUI(f) {
		t.Fatalf("auto must stay off for a plain file")
	}
}
