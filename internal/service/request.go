// Package service reconciles the boot-time enablement and start-up flags of
// an OpenBSD service with a requested state.
package service

import "github.com/sarevok-anchev/ansible-modules-extras/internal/rcctl"

// RequestKind selects which aspect of a service a Request changes.
type RequestKind int

const (
	// KindEnablement requests an enabled or disabled service.
	KindEnablement RequestKind = iota + 1
	// KindFlags requests a specific flags string.
	KindFlags
)

// Request is a validated desired state for one service. Exactly one of
// Enabled (for KindEnablement) or Flags (for KindFlags) is meaningful.
// An empty Flags value clears the service's flags.
type Request struct {
	Service string
	Kind    RequestKind
	Enabled bool
	Flags   string
}

// SetEnablement builds a Request that enables or disables service.
func SetEnablement(service string, enabled bool) Request {
	return Request{Service: service, Kind: KindEnablement, Enabled: enabled}
}

// SetFlags builds a Request that sets the flags of service.
func SetFlags(service, flags string) Request {
	return Request{Service: service, Kind: KindFlags, Flags: flags}
}

// Validate rejects requests that must never reach the control command.
func (r Request) Validate() error {
	if r.Service == "" {
		return usageError("missing required arguments: name")
	}
	switch r.Kind {
	case KindEnablement:
		return nil
	case KindFlags:
		if rcctl.IsDisabled(r.Flags) {
			return usageError("flags may not be set to %q, use state=disabled to disable the service", rcctl.Disabled)
		}
		return nil
	default:
		return usageError("one of the following is required: state, flags")
	}
}
