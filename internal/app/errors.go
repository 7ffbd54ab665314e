package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoTerminal indicates Run was called before SetTerminal.
	ErrNoTerminal = errors.New("no terminal attached")

	// ErrInitialization indicates an initialization failure.
	ErrInitialization = errors.New("initialization failed")
)

// OperationError represents an error during a specific operation.
type OperationError struct {
	Op     string // operation name ("open", "write", ...)
	Target string // target of the operation, usually a path
	Err    error  // underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WrapError wraps an error with formatted context when it is not nil.
// The format string uses fmt.Sprintf verbs; wrapping is handled here,
// so do not use %w.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
