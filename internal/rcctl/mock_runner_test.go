package rcctl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
)

// mockRunner returns canned results keyed by the space-joined command line.
type mockRunner struct {
	results map[string]Result
	errs    map[string]error
	paths   map[string]string

	calls [][]string
}

func (m *mockRunner) LookPath(file string) (string, error) {
	if p, ok := m.paths[file]; ok {
		return p, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	argv := append([]string{name}, args...)
	m.calls = append(m.calls, argv)
	key := strings.Join(argv, " ")
	if err, ok := m.errs[key]; ok {
		return Result{}, err
	}
	return m.results[key], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
