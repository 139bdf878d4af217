package gcloud

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands. The gateway talks to gcloud only
// through this interface so tests can substitute a fake.
type Runner interface {
	// Run executes the command, captures stdout, and returns it. A
	// non-zero exit status is returned as *ExternalFailureError with
	// the captured stderr attached.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunInteractive executes the command attached to the caller's
	// stdin/stdout/stderr. Used for flows like `gcloud auth login`
	// that open a browser and prompt the user.
	RunInteractive(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return stdoutBuf.Bytes(), &ExternalFailureError{
				Command:  name + " " + strings.Join(args, " "),
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderrBuf.String(),
			}
		}
		return stdoutBuf.Bytes(), err
	}
	return stdoutBuf.Bytes(), nil
}

func (execRunner) RunInteractive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &ExternalFailureError{
				Command:  name + " " + strings.Join(args, " "),
				ExitCode: exitErr.ExitCode(),
			}
		}
		return err
	}
	return nil
}
