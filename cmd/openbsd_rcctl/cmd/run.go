package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sarevok-anchev/ansible-modules-extras/internal/module"
	"github.com/sarevok-anchev/ansible-modules-extras/internal/rcctl"
	"github.com/sarevok-anchev/ansible-modules-extras/internal/service"
)

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// 1. Load config.
	cfg := module.DefaultConfig()
	if cfgFile != "" {
		parsed, err := module.ParseConfig(cfgFile)
		if err != nil {
			return fail(out, err)
		}
		cfg = parsed
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return fail(out, err)
		}
	}

	// 2. Set up structured logger. stdout is reserved for the result.
	logger := setupLogger(cfg.LogLevel, cmd.ErrOrStderr())

	// 3. Collect and validate parameters before running anything.
	var params module.Params
	if len(args) == 1 {
		p, err := module.LoadParams(args[0])
		if err != nil {
			return fail(out, err)
		}
		p.CheckMode = p.CheckMode || checkMode
		params = p
	} else {
		params = paramsFromFlags(cmd)
	}
	req, err := params.Request()
	if err != nil {
		return fail(out, err)
	}

	// 4. Preflight: platform and control executable.
	ctx := cmd.Context()
	runner := newRunner()
	path, err := rcctl.Preflight(ctx, runner, cfg.RCCtl)
	if err != nil {
		return fail(out, service.PlatformError(err))
	}
	logger.Debug("preflight passed", "rcctl", path)

	// 5. Reconcile.
	client := rcctl.NewClient(runner, path, logger)
	reconciler := service.NewReconciler(client, logger, service.WithCheckMode(params.CheckMode))
	outcome, err := reconciler.Reconcile(ctx, req)
	if err != nil {
		logger.Error("reconcile failed", "service", req.Service, "error", err)
		return fail(out, err)
	}

	return module.Succeeded(outcome).Write(out)
}

// fail writes a failed result and returns err so the process exits non-zero.
func fail(w io.Writer, err error) error {
	if werr := module.Failed(err).Write(w); werr != nil {
		return fmt.Errorf("%w (%v)", err, werr)
	}
	return err
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
