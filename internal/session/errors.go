package session

import "fmt"

// ValidationError indicates an operation was rejected because the
// session is not in a state that allows it. The session is left
// unchanged.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Op, e.Reason)
}

func rejected(op, format string, args ...any) *ValidationError {
	return &ValidationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
