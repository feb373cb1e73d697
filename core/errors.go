package core

import "fmt"

// ValidationError means the punch request itself was malformed. Nothing has
// been persisted and the caller should fix the request, not retry it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Message)
}

// InfrastructureError wraps a failed store read or a failed primary event
// write. No partial PunchEvent exists, so retrying the whole punch is safe.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}
