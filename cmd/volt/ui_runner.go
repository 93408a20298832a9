package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"volt/internal/driver"
	"volt/internal/ui"
)

// progressChoice records how the progress view was requested, via the
// --ui flag or the [verify].ui manifest key.
type progressChoice int

const (
	progressAuto progressChoice = iota
	progressForced
	progressDisabled
)

func parseProgressChoice(raw string) (progressChoice, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return progressAuto, nil
	case "on":
		return progressForced, nil
	case "off":
		return progressDisabled, nil
	}
	return progressAuto, fmt.Errorf("progress mode %q not recognised, use auto, on or off", raw)
}

// wantTUI resolves the auto choice against the writer the view would
// render to. Forced and disabled choices ignore the writer.
func (c progressChoice) wantTUI(out *os.File) bool {
	switch c {
	case progressForced:
		return true
	case progressDisabled:
		return false
	}
	return isTerminal(out)
}

type verifyOutcome struct {
	report *driver.Report
	err    error
}

func runVerifyWithUI(ctx context.Context, title string, opts driver.Options) (*driver.Report, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan verifyOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		rep, err := driver.Verify(ctx, opts)
		outcomeCh <- verifyOutcome{report: rep, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, driver.UnitNames(), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
