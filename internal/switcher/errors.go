package switcher

import (
	"errors"
	"fmt"
)

// Sentinel causes for an aborted run; inspect with errors.Is.
var (
	ErrUserCancelled = errors.New("cancelled by user")
	ErrNoCandidates  = errors.New("no candidates available")
)

// AbortError terminates a run at a specific stage. Err carries the
// cause: a sentinel above, or the underlying gateway error for a
// failed external call.
type AbortError struct {
	Stage  Stage
	Reason string
	Err    error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%s stage: %s", e.Stage, e.Reason)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

func abort(stage Stage, reason string, cause error) *AbortError {
	return &AbortError{Stage: stage, Reason: reason, Err: cause}
}
