package driver

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one timed span of work.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer collects named phases so the CLI can print a timing summary. A nil
// Timer is a valid no-op sink, so callers can pass one through optionally.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 8)}
}

// Begin starts a phase and returns its index for End.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End closes the phase at idx. An optional note is attached verbatim.
func (t *Timer) End(idx int, note string) {
	if t == nil || idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

func (t *Timer) Phases() []Phase {
	if t == nil {
		return nil
	}
	return t.phases
}

// Summary renders the phases as an aligned block for terminal output.
func (t *Timer) Summary() string {
	if t == nil || len(t.phases) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("timings:\n")
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
		ms := float64(p.Dur.Microseconds()) / 1000.0
		if p.Note != "" {
			fmt.Fprintf(&sb, "  %-20s %7.2f ms  (%s)\n", p.Name, ms, p.Note)
		} else {
			fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", p.Name, ms)
		}
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", float64(total.Microseconds())/1000.0)
	return sb.String()
}
