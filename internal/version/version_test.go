package version

import (
	"strings"
	"testing"
)

func TestLongIncludesMetadata(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = ""
	BuildDate = ""
	if got := Long(); got != "volt 1.2.3" {
		t.Fatalf("Long() = %q, want %q", got, "volt 1.2.3")
	}

	GitCommit = "abc123"
	BuildDate = "2026-01-15"
	got := Long()
	for _, want := range []string{"volt 1.2.3", "(abc123)", "built 2026-01-15"} {
		if !strings.Contains(got, want) {
			t.Errorf("Long() = %q, missing %q", got, want)
		}
	}
}

func TestColoredFallsBackOnOddShapes(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "dev"
	if got := Colored(); got != "dev" {
		t.Fatalf("Colored() = %q, want the version untouched", got)
	}
}
