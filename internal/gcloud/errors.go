package gcloud

import (
	"fmt"
	"strings"
)

// ExternalFailureError reports a gcloud invocation that ran but exited
// non-zero. Stderr carries gcloud's own diagnostic text.
type ExternalFailureError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExternalFailureError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// MalformedOutputError reports output from gcloud that could not be
// decoded into the expected structure.
type MalformedOutputError struct {
	Command string
	Err     error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("could not parse output of %s: %v", e.Command, e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
