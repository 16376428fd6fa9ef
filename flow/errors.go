package flow

import (
	"errors"
	"fmt"
)

// ErrCancelled matches every *CancelledError
var ErrCancelled = errors.New("questionnaire cancelled")

// CancelledError reports a session that ended before every question was
// answered. Cause is set when the run was stopped by its context.
type CancelledError struct {
	Answered int
	Cause    error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("cancelled after giving %d answers", e.Answered)
}

// Is makes errors.Is(err, ErrCancelled) hold
func (e *CancelledError) Is(target error) bool {
	return target == ErrCancelled
}

func (e *CancelledError) Unwrap() error {
	return e.Cause
}
