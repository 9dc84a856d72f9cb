package chat

import "fmt"

// ValidationError rejects malformed caller input before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// ProcessingError wraps the first unrecoverable fault of a turn. It is the
// only error shape ProcessMessage returns besides ValidationError.
type ProcessingError struct {
	Step string
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing failed at %s: %v", e.Step, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
