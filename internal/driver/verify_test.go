package driver

import (
	"context"
	"testing"
)

func TestVerifyMatrixIsClean(t *testing.T) {
	rep, err := Verify(context.Background(), Options{Jobs: 4})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if rep.Failures != 0 {
		for _, u := range rep.Units {
			for _, f := range u.Failures {
				t.Errorf("%s: %s: got %s, want %s", u.Unit, f.Case, f.Got, f.Want)
			}
		}
		t.Fatalf("%d of %d cases failed", rep.Failures, rep.Cases)
	}
	if !rep.Clean() {
		t.Fatal("report with zero failures must be clean")
	}
	if len(rep.Units) != 18 {
		t.Fatalf("units = %d, want 18", len(rep.Units))
	}
	for _, u := range rep.Units {
		if u.Cases == 0 {
			t.Errorf("unit %s ran no cases", u.Unit)
		}
	}
	if rep.Cases < 1000 {
		t.Fatalf("suspiciously small matrix: %d cases", rep.Cases)
	}
	if len(rep.Fingerprint) != 64 {
		t.Fatalf("fingerprint %q is not a sha256 hex", rep.Fingerprint)
	}
	if rep.FromCache {
		t.Fatal("no cache was configured")
	}
}

func TestVerifyServesCleanRunsFromCache(t *testing.T) {
	cache, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenCacheAt: %v", err)
	}

	first, err := Verify(context.Background(), Options{Cache: cache})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.FromCache {
		t.Fatal("first run cannot come from an empty cache")
	}

	second, err := Verify(context.Background(), Options{Cache: cache})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second run should be served from cache")
	}
	if second.Fingerprint != first.Fingerprint || second.Cases != first.Cases {
		t.Fatalf("cached report diverged: %s/%d vs %s/%d",
			second.Fingerprint, second.Cases, first.Fingerprint, first.Cases)
	}

	third, err := Verify(context.Background(), Options{Cache: cache, RefreshCache: true})
	if err != nil {
		t.Fatalf("refresh run: %v", err)
	}
	if third.FromCache {
		t.Fatal("RefreshCache must skip the lookup")
	}
}

func TestVerifyEmitsProgressEvents(t *testing.T) {
	ch := make(chan Event, 256)
	if _, err := Verify(context.Background(), Options{Progress: ChannelSink{Ch: ch}}); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	counts := map[Status]int{}
	for len(ch) > 0 {
		counts[(<-ch).Status]++
	}
	if counts[StatusQueued] != 18 || counts[StatusWorking] != 18 || counts[StatusDone] != 18 {
		t.Fatalf("event counts = %v, want 18 of queued, working and done", counts)
	}
	if counts[StatusError] != 0 {
		t.Fatalf("clean run emitted %d error events", counts[StatusError])
	}
}

func TestVerifyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Verify(ctx, Options{}); err == nil {
		t.Fatal("want an error from a cancelled context")
	}
}

func TestVerifyRecordsTimerPhases(t *testing.T) {
	tm := NewTimer()
	if _, err := Verify(context.Background(), Options{Timer: tm}); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	names := map[string]bool{}
	for _, p := range tm.Phases() {
		names[p.Name] = true
	}
	for _, want := range []string{"fingerprint", "units"} {
		if !names[want] {
			t.Errorf("missing phase %q in %v", want, names)
		}
	}
}
