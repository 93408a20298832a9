package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmptyConfigIsANoOp(t *testing.T) {
	s, err := Start(Config{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestNilSessionStops(t *testing.T) {
	var s *Session
	if err := s.Stop(); err != nil {
		t.Fatalf("nil Stop: %v", err)
	}
}

func TestHeapProfileWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.out")
	s, err := Start(Config{HeapPath: path})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat heap profile: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("heap profile is empty")
	}
}

func TestCPUProfileBadPath(t *testing.T) {
	dir := t.TempDir()
	if _, err := Start(Config{CPUPath: dir}); err == nil {
		t.Fatalf("expected error for directory path")
	}
}
