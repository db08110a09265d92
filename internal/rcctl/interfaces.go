package rcctl

import "context"

// Result is the observable outcome of one external command invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner abstracts process execution for testability.
type Runner interface {
	// LookPath resolves an executable name against PATH.
	LookPath(file string) (string, error)

	// Run executes name with args and waits for it to exit. A non-zero exit
	// status is reported through Result.ExitCode with a nil error; the error
	// is non-nil only when the process could not be started.
	Run(ctx context.Context, name string, args ...string) (Result, error)
}
