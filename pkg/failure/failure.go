// Package failure classifies the errors a bocheck run can end with so the
// CLI and web UI can pick the right visual cue without parsing messages.
package failure

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	// UserInput covers an empty or invalid campaign list and an empty
	// active-currency set.
	UserInput
	// Network covers non-success HTTP statuses and fetch failures.
	Network
	// Extraction covers a converter field that could not be read.
	Extraction
	// FatalAbort covers a missing active tab or a missing campaign; the
	// whole run produces no result.
	FatalAbort
	// Timeout covers a page that never reached the loaded state.
	Timeout
)

func (k Kind) String() string {
	switch k {
	case UserInput:
		return "user input"
	case Network:
		return "network"
	case Extraction:
		return "extraction"
	case FatalAbort:
		return "fatal abort"
	case Timeout:
		return "timeout"
	}
	return "unknown"
}

// Error attaches a Kind and the failing operation to an underlying error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Newf(kind Kind, op, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of the outermost classified error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
