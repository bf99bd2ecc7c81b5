package encode

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Error is an encoder failure carrying the diagnostic text ffmpeg wrote to
// stderr before exiting non-zero.
type Error struct {
	Stderr string
	Err    error
}

// Error embeds the captured diagnostic text verbatim.
func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("ffmpeg error: %s", e.Stderr)
	}
	return fmt.Sprintf("ffmpeg error: %v", e.Err)
}

// Unwrap exposes the underlying process error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Runner executes one external tool invocation synchronously. The real
// implementation shells out; tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs the tool via os/exec with stderr capture.
type ExecRunner struct{}

// NewExecRunner creates the process-backed runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run blocks until the process exits. A non-zero exit status is returned as
// an *Error holding the captured stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return &Error{Stderr: stderrBuf.String(), Err: err}
	}
	return nil
}
