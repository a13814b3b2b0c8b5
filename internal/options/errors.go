package options

import (
	"errors"
	"fmt"
)

// Parse errors. Every error returned by Parse or by Parsed value retrieval
// is an *Error whose Kind is one of these.
var (
	ErrMalformedCommandLine  = errors.New("malformed command line")
	ErrUnrecognizedOption    = fmt.Errorf("%w: unrecognized option", ErrMalformedCommandLine)
	ErrConflictingOptions    = errors.New("conflicting options")
	ErrMissingRequiredOption = errors.New("missing required option")
	ErrMissingPairedOption   = errors.New("missing paired option")
	ErrMissingArgumentValue  = errors.New("option is missing a value")
	ErrNotValueBearing       = errors.New("option does not take a value")
)

// Error reports a command-line problem. The CLI prints usage text for any
// error that unwraps to an *Error.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Detail
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
