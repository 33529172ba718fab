// SPDX-License-Identifier: MPL-2.0

package java

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultExecTimeout bounds launcher invocations when the caller's context
// carries no deadline of its own.
const DefaultExecTimeout = 5 * time.Second

// execKillGrace is how long a process gets between context cancellation
// and a hard kill, so no child outlives a timeout.
const execKillGrace = 2 * time.Second

// ProcessOutput carries the captured result of a launcher invocation.
type ProcessOutput struct {
	// ExitCode is the process exit status. Nonzero exits are reported
	// here, not as errors: the caller asked for the invocation and gets
	// the outcome verbatim.
	ExitCode int
	// Stdout is the captured standard output.
	Stdout string
	// Stderr is the captured standard error. Java launchers write
	// -version output here.
	Stderr string
}

// Combined returns stdout when non-empty, otherwise stderr.
func (p *ProcessOutput) Combined() string {
	if p.Stdout != "" {
		return p.Stdout
	}
	return p.Stderr
}

// ExecError is returned when a launcher invocation could not produce an
// exit status: the binary failed to spawn or the timeout expired.
type ExecError struct {
	// Path is the launcher binary that was invoked.
	Path string
	// Timeout is true when the invocation was killed by its deadline.
	Timeout bool
	// Output holds whatever the process wrote before it was killed.
	// Launchers often print their version banner and then stall, so a
	// timeout does not always mean the output is lost. Nil when the
	// process never spawned.
	Output *ProcessOutput
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("execution of %s timed out", e.Path)
	}
	return fmt.Sprintf("failed to execute %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExecError) Unwrap() error { return e.Err }

// Execute runs the installation's launcher with args and captures its
// output. Nonzero exits are a normal ProcessOutput result; spawn failures
// and timeouts return an *ExecError. When ctx has no deadline,
// DefaultExecTimeout applies. The child is killed on timeout so nothing
// is left running afterwards.
func (i *Installation) Execute(ctx context.Context, args ...string) (*ProcessOutput, error) {
	if i.Exec == "" {
		return nil, &ExecError{Path: i.Root, Err: errors.New("installation has no launcher binary")}
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultExecTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, i.Exec, args...)
	cmd.WaitDelay = execKillGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &ProcessOutput{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		if ctx.Err() != nil {
			return nil, &ExecError{
				Path:    i.Exec,
				Timeout: errors.Is(ctx.Err(), context.DeadlineExceeded),
				Output:  out,
				Err:     ctx.Err(),
			}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return nil, &ExecError{Path: i.Exec, Err: err}
	}

	return out, nil
}

// VersionOutput invokes the launcher with -version and returns the
// combined textual output. Java writes version banners to stderr, so the
// stderr stream is preferred when stdout is empty.
func (i *Installation) VersionOutput(ctx context.Context) (string, error) {
	out, err := i.Execute(ctx, "-version")
	if err != nil {
		return "", err
	}
	return out.Combined(), nil
}
