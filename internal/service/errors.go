package service

import "fmt"

// ErrorKind categorizes a reconciliation failure.
type ErrorKind int

const (
	// KindPlatform: wrong operating system or control tool missing.
	KindPlatform ErrorKind = iota + 1
	// KindUsage: invalid parameter combination or reserved flags value.
	KindUsage
	// KindPrecondition: the service is not in a state that allows the request.
	KindPrecondition
	// KindCommand: the control command failed or could not be run.
	KindCommand
)

// String returns the lower-case name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindUsage:
		return "usage"
	case KindPrecondition:
		return "precondition"
	case KindCommand:
		return "command"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a terminal reconciliation failure. Msg is the caller-facing
// reason; for command failures it is the command's stderr.
// It supports errors.Is matching by kind against the sentinels below.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Error returns Msg.
func (e *Error) Error() string {
	return e.Msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is supports errors.Is matching by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors for each failure kind.
var (
	ErrPlatform     = &Error{Kind: KindPlatform, Msg: "platform error"}
	ErrUsage        = &Error{Kind: KindUsage, Msg: "usage error"}
	ErrPrecondition = &Error{Kind: KindPrecondition, Msg: "precondition error"}
	ErrCommand      = &Error{Kind: KindCommand, Msg: "command failed"}
)

func usageError(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Msg: fmt.Sprintf(format, args...)}
}

// PlatformError wraps a preflight failure as a platform-kind Error.
func PlatformError(err error) *Error {
	return &Error{Kind: KindPlatform, Msg: err.Error(), Err: err}
}
