package serror

import "fmt"

// SpireError is the error type returned by packages in this module for
// failures that originate inside the core rather than the standard library.
type SpireError struct {
	Err string
}

// New returns a new SpireError with a formatted message.
func New(format string, args ...any) *SpireError {
	return &SpireError{Err: fmt.Sprintf(format, args...)}
}

func (e *SpireError) Error() string {
	return e.Err
}
