package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sarevok-anchev/ansible-modules-extras/internal/rcctl"
)

// Controller is the subset of the rcctl protocol the Reconciler needs.
// *rcctl.Client satisfies it.
type Controller interface {
	Get(ctx context.Context, service string) (rcctl.Result, error)
	GetFlags(ctx context.Context, service string) (string, rcctl.Result, error)
	SetStatus(ctx context.Context, service string, enabled bool) (rcctl.Result, error)
	SetFlags(ctx context.Context, service, flags string) (rcctl.Result, error)
}

// Outcome is the result of a successful reconciliation.
type Outcome struct {
	Changed bool
	Msg     string
}

// Reconciler applies a Request to a service: it queries the current state,
// and mutates it only when it differs from the request.
type Reconciler struct {
	ctl       Controller
	checkMode bool
	logger    *slog.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithCheckMode makes the Reconciler report the change it would make
// without running the mutating command.
func WithCheckMode(enabled bool) Option {
	return func(r *Reconciler) {
		r.checkMode = enabled
	}
}

// NewReconciler creates a Reconciler issuing commands through ctl.
func NewReconciler(ctl Controller, logger *slog.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		ctl:    ctl,
		logger: logger.With("component", "service"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile brings req.Service to the requested state. Failures are
// returned as *Error.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}
	switch req.Kind {
	case KindFlags:
		return r.reconcileFlags(ctx, req.Service, req.Flags)
	default:
		return r.reconcileEnablement(ctx, req.Service, req.Enabled)
	}
}

func (r *Reconciler) reconcileEnablement(ctx context.Context, service string, enabled bool) (Outcome, error) {
	res, err := r.ctl.Get(ctx, service)
	if err != nil {
		return Outcome{}, commandError(err)
	}
	r.warnOnQueryFailure(service, res)

	current, err := rcctl.EnabledFromGet(res.Stdout, service)
	if err != nil {
		return Outcome{}, commandError(err)
	}
	if current == enabled {
		r.logger.Info("service already in requested state", "service", service, "enabled", enabled)
		return Outcome{}, nil
	}

	verb := "disabled"
	if enabled {
		verb = "enabled"
	}
	msg := fmt.Sprintf("%s service: %s", verb, service)

	if r.checkMode {
		r.logger.Info("check mode, skipping status change", "service", service, "enabled", enabled)
		return Outcome{Changed: true, Msg: msg}, nil
	}

	res, err = r.ctl.SetStatus(ctx, service, enabled)
	if err != nil {
		return Outcome{}, commandError(err)
	}
	if !res.Success() {
		return Outcome{}, mutationError(res)
	}
	r.logger.Info("service status changed", "service", service, "enabled", enabled)
	return Outcome{Changed: true, Msg: msg}, nil
}

func (r *Reconciler) reconcileFlags(ctx context.Context, service, flags string) (Outcome, error) {
	current, res, err := r.ctl.GetFlags(ctx, service)
	if err != nil {
		return Outcome{}, commandError(err)
	}
	r.warnOnQueryFailure(service, res)

	// rcctl refuses to set flags on a disabled service.
	if rcctl.IsDisabled(current) {
		return Outcome{}, &Error{Kind: KindPrecondition, Msg: "enable service first"}
	}
	if current == flags {
		r.logger.Info("service flags already set", "service", service, "flags", flags)
		return Outcome{}, nil
	}

	msg := fmt.Sprintf("service %s flags changed to: %s", service, flags)
	if flags == "" {
		msg = fmt.Sprintf("service %s flags reset", service)
	}

	if r.checkMode {
		r.logger.Info("check mode, skipping flags change", "service", service, "from", current, "to", flags)
		return Outcome{Changed: true, Msg: msg}, nil
	}

	res, err = r.ctl.SetFlags(ctx, service, flags)
	if err != nil {
		return Outcome{}, commandError(err)
	}
	if !res.Success() {
		return Outcome{}, mutationError(res)
	}
	r.logger.Info("service flags changed", "service", service, "from", current, "to", flags)
	return Outcome{Changed: true, Msg: msg}, nil
}

// warnOnQueryFailure logs a failed read-only query. The query's exit status
// does not affect the decision.
func (r *Reconciler) warnOnQueryFailure(service string, res rcctl.Result) {
	if res.Success() {
		return
	}
	r.logger.Warn("rcctl query failed",
		"service", service,
		"exit_code", res.ExitCode,
		"stderr", res.Stderr,
	)
}

func commandError(err error) *Error {
	return &Error{Kind: KindCommand, Msg: err.Error(), Err: err}
}

// mutationError reports stderr verbatim; an empty stderr falls back to the
// exit status.
func mutationError(res rcctl.Result) *Error {
	msg := res.Stderr
	if msg == "" {
		msg = fmt.Sprintf("rcctl exited with status %d", res.ExitCode)
	}
	return &Error{Kind: KindCommand, Msg: msg}
}
