package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sarevok-anchev/ansible-modules-extras/internal/rcctl"
)

// fakeController keeps per-service flags in memory and records every call
// in rcctl argument form. A flags value of "NO" means disabled.
type fakeController struct {
	flags map[string]string

	// getOutput overrides the "get <service>" stdout when set.
	getOutput map[string]string
	// setResult, when non-nil, is returned by mutating calls instead of
	// applying them.
	setResult *rcctl.Result
	// queryExit is the exit code reported by read-only queries.
	queryExit int
	err       error

	calls []string
}

func newFakeController(flags map[string]string) *fakeController {
	return &fakeController{flags: flags, getOutput: map[string]string{}}
}

func (f *fakeController) Get(_ context.Context, service string) (rcctl.Result, error) {
	f.calls = append(f.calls, "get "+service)
	if f.err != nil {
		return rcctl.Result{}, f.err
	}
	if out, ok := f.getOutput[service]; ok {
		return rcctl.Result{Stdout: out, ExitCode: f.queryExit}, nil
	}
	v, ok := f.flags[service]
	if !ok {
		return rcctl.Result{ExitCode: 1, Stderr: fmt.Sprintf("rcctl: service %s does not exist\n", service)}, nil
	}
	out := fmt.Sprintf("%s_class=daemon\n%s_flags=%s\n%s_timeout=30\n", service, service, v, service)
	return rcctl.Result{Stdout: out, ExitCode: f.queryExit}, nil
}

func (f *fakeController) GetFlags(_ context.Context, service string) (string, rcctl.Result, error) {
	f.calls = append(f.calls, "get "+service+" flags")
	if f.err != nil {
		return "", rcctl.Result{}, f.err
	}
	v := f.flags[service]
	return v, rcctl.Result{Stdout: v + "\n", ExitCode: f.queryExit}, nil
}

func (f *fakeController) SetStatus(_ context.Context, service string, enabled bool) (rcctl.Result, error) {
	status := "off"
	if enabled {
		status = "on"
	}
	f.calls = append(f.calls, "set "+service+" status "+status)
	if f.setResult != nil {
		return *f.setResult, nil
	}
	if enabled {
		f.flags[service] = ""
	} else {
		f.flags[service] = rcctl.Disabled
	}
	return rcctl.Result{}, nil
}

func (f *fakeController) SetFlags(_ context.Context, service, flags string) (rcctl.Result, error) {
	f.calls = append(f.calls, "set "+service+" flags "+flags)
	if f.setResult != nil {
		return *f.setResult, nil
	}
	f.flags[service] = flags
	return rcctl.Result{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
