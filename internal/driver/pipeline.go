package driver

import "time"

// Stage identifies a phase of a verification unit.
type Stage string

const (
	StageResolve Stage = "resolve"
	StageEmit    Stage = "emit"
	StageExecute Stage = "execute"
	StageCheck   Stage = "check"
)

// Status describes the progress of a unit within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event is a progress notification emitted while a unit runs.
type Event struct {
	Unit    string
	Stage   Stage
	Status  Status
	Err     error
	Cases   int
	Elapsed time.Duration
}

// ProgressSink receives events from a running verification.
// Implementations must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(evt Event)
}

// ChannelSink forwards events to a channel, e.g. for a terminal UI.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// discardSink is used when the caller does not want progress events.
type discardSink struct{}

func (discardSink) OnEvent(Event) {}
