package rcctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/execabs"
)

// waitDelayAfterCancel bounds how long Run waits for output pipes to close
// after the context is cancelled and the child is killed.
const waitDelayAfterCancel = 500 * time.Millisecond

// execRunner implements Runner on top of execabs, which refuses to resolve
// executables relative to the current directory.
type execRunner struct{}

// NewExecRunner returns a Runner that starts real processes.
func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) LookPath(file string) (string, error) {
	return execabs.LookPath(file)
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := execabs.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelayAfterCancel

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("rcctl: run %s: %w", name, ctxErr)
		}
		var exitErr *execabs.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("rcctl: run %s: %w", name, runErr)
	}
	return res, nil
}
