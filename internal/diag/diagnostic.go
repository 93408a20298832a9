package diag

import "fmt"

// Severity ranks a diagnostic: errors fail the run, warnings survive
// it, info lines are advisory.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("SEVERITY(%d)", uint8(s))
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Notes    []string
}

// New builds a diagnostic with the given severity.
func New(sev Severity, code Code, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: msg}
}

// Warningf builds a warning diagnostic.
func Warningf(code Code, format string, args ...any) Diagnostic {
	return New(SevWarning, code, fmt.Sprintf(format, args...))
}

// Errorf builds an error diagnostic.
func Errorf(code Code, format string, args ...any) Diagnostic {
	return New(SevError, code, fmt.Sprintf(format, args...))
}

// Infof builds an informational diagnostic.
func Infof(code Code, format string, args ...any) Diagnostic {
	return New(SevInfo, code, fmt.Sprintf(format, args...))
}

// WithNote returns a copy with one extra context line.
func (d Diagnostic) WithNote(format string, args ...any) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], fmt.Sprintf(format, args...))
	return d
}

// Format renders one line per diagnostic plus indented notes, stable for
// golden comparisons.
func (d Diagnostic) Format() string {
	out := fmt.Sprintf("%s %s: %s", d.Severity, d.Code.ID(), d.Message)
	for _, n := range d.Notes {
		out += "\n  note: " + n
	}
	return out
}
