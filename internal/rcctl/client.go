package rcctl

import (
	"context"
	"log/slog"
	"strings"
)

// Client issues rcctl subcommands through a Runner.
type Client struct {
	runner Runner
	path   string
	logger *slog.Logger
}

// NewClient creates a Client invoking the control executable at path.
// path is normally the value returned by Preflight.
func NewClient(runner Runner, path string, logger *slog.Logger) *Client {
	return &Client{
		runner: runner,
		path:   path,
		logger: logger.With("component", "rcctl"),
	}
}

// Get runs "rcctl get <service>" and returns its raw result.
func (c *Client) Get(ctx context.Context, service string) (Result, error) {
	return c.run(ctx, "get", service)
}

// GetFlags runs "rcctl get <service> flags". The returned string is stdout
// with surrounding whitespace removed.
func (c *Client) GetFlags(ctx context.Context, service string) (string, Result, error) {
	res, err := c.run(ctx, "get", service, "flags")
	if err != nil {
		return "", res, err
	}
	return strings.TrimSpace(res.Stdout), res, nil
}

// SetStatus runs "rcctl set <service> status on|off".
func (c *Client) SetStatus(ctx context.Context, service string, enabled bool) (Result, error) {
	status := "off"
	if enabled {
		status = "on"
	}
	return c.run(ctx, "set", service, "status", status)
}

// SetFlags runs "rcctl set <service> flags <flags>". An empty flags value is
// passed as an empty argument, which clears the flags.
func (c *Client) SetFlags(ctx context.Context, service, flags string) (Result, error) {
	return c.run(ctx, "set", service, "flags", flags)
}

func (c *Client) run(ctx context.Context, args ...string) (Result, error) {
	res, err := c.runner.Run(ctx, c.path, args...)
	if err != nil {
		return res, err
	}
	c.logger.Debug("command finished",
		"args", args,
		"exit_code", res.ExitCode,
	)
	return res, nil
}
