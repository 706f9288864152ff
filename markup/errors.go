package markup

import "fmt"

// Severity classifies a Diagnostic.
type Severity int

const (
	// SeverityMajor marks a well-formed directive which had to be rejected,
	// e.g. an index beyond the configured palette.
	SeverityMajor Severity = iota
	// SeverityMinor marks malformed markup which has been skipped.
	SeverityMinor
)

func (s Severity) String() string {
	switch s {
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic reports a directive which has been dropped while tokenizing.
// Diagnostics never abort tokenizing; they are collected on the Result.
type Diagnostic struct {
	Severity Severity
	Pos      int    // rune position within the raw input line
	Issue    string // human-readable description
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[%s] at %d: %s", d.Severity, d.Pos, d.Issue)
}
