package rcctl

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Preflight.
var (
	ErrPlatformMismatch = errors.New("rcctl: platform mismatch")
	ErrToolNotFound     = errors.New("rcctl: tool not found")
)

// Preflight confirms the host runs cfg.Platform and resolves the control
// executable. It returns the resolved path. On a platform mismatch no
// further command is attempted.
func Preflight(ctx context.Context, runner Runner, cfg Config) (string, error) {
	cfg.ApplyDefaults()

	res, err := runner.Run(ctx, cfg.UnameCommand)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPlatformMismatch, err)
	}
	if res.Stdout != cfg.Platform+"\n" {
		return "", fmt.Errorf("%w: this module only works on %s, host reports %q",
			ErrPlatformMismatch, cfg.Platform, strings.TrimSpace(res.Stdout))
	}

	path, err := runner.LookPath(cfg.Command)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrToolNotFound, cfg.Command, err)
	}
	return path, nil
}
