package module

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sarevok-anchev/ansible-modules-extras/internal/service"
)

// Result is the JSON object the framework reads from the module's stdout.
type Result struct {
	Changed bool   `json:"changed"`
	Failed  bool   `json:"failed,omitempty"`
	Msg     string `json:"msg,omitempty"`

	// Kind names the failure category; it is empty on success.
	Kind string `json:"error_kind,omitempty"`
}

// Succeeded converts a reconciliation outcome into a Result.
func Succeeded(out service.Outcome) Result {
	return Result{Changed: out.Changed, Msg: out.Msg}
}

// Failed converts an error into a failed Result. A *service.Error
// contributes its kind; any other error is reported as-is.
func Failed(err error) Result {
	res := Result{Failed: true, Msg: err.Error()}
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		res.Msg = svcErr.Msg
		res.Kind = svcErr.Kind.String()
	}
	return res
}

// Write encodes r as a single JSON object followed by a newline.
func (r Result) Write(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("module: write result: %w", err)
	}
	return nil
}
