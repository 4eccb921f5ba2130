package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnparsableDate is returned when a begin directive does not hold an MM/DD/YYYY date.
	ErrUnparsableDate = errors.New("unparsable date")
	// ErrMalformedLine is returned when a line carries more than one ':' separator.
	ErrMalformedLine = errors.New("malformed directive line")
	// ErrUnknownField is returned for a directive key outside begin, week, topic and project.
	ErrUnknownField = errors.New("unknown field")
	// ErrDanglingContinuation is returned for a continuation line with no field to extend.
	ErrDanglingContinuation = errors.New("continuation without an active field")
)

// SyntaxError describes the offending line of a syllabus that could not be parsed.
type SyntaxError struct {
	Line    int
	Text    string
	Kind    error
	Parts   []string
	Content string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d: %v", e.Line, e.Kind)
	switch {
	case len(e.Parts) > 0:
		fmt.Fprintf(&b, ": %q split into |%s|", e.Text, strings.Join(e.Parts, "|"))
	case e.Content != "":
		fmt.Fprintf(&b, ": %q", e.Content)
	default:
		fmt.Fprintf(&b, ": %q", e.Text)
	}
	return b.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}
