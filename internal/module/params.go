// Package module implements the automation framework's binary-module
// protocol: an arguments file in, a single JSON result object out.
package module

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarevok-anchev/ansible-modules-extras/internal/service"
)

// Accepted values of the state parameter.
const (
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
)

// Params are the module parameters as supplied by the caller. State and
// Flags are pointers so that an absent parameter is distinguishable from an
// empty one.
type Params struct {
	Name  string  `json:"name" yaml:"name"`
	State *string `json:"state" yaml:"state"`
	Flags *string `json:"flags" yaml:"flags"`

	// CheckMode is set by the framework when the play runs with --check.
	CheckMode bool `json:"_ansible_check_mode" yaml:"_ansible_check_mode"`
}

// LoadParams reads an arguments file written by the framework (JSON) or by
// hand (YAML).
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("module: read args %s: %w", path, err)
	}
	return ParseParams(data)
}

// ParseParams decodes module parameters. Valid JSON is decoded as JSON, so
// escapes the YAML parser rejects (surrogate pairs, "\/") are accepted;
// anything else is decoded as YAML. Unknown keys are ignored, as the
// framework passes its own internal "_ansible_*" keys.
func ParseParams(data []byte) (Params, error) {
	var p Params
	if json.Valid(data) {
		if err := json.Unmarshal(data, &p); err != nil {
			return Params{}, fmt.Errorf("module: parse args: %w", err)
		}
		return p, nil
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("module: parse args: %w", err)
	}
	return p, nil
}

// Request validates the parameter combination and converts it to a
// service.Request. Every failure is a usage-kind *service.Error.
func (p Params) Request() (service.Request, error) {
	if p.Name == "" {
		return service.Request{}, usage("missing required arguments: name")
	}

	var req service.Request
	switch {
	case p.State != nil && p.Flags != nil:
		return service.Request{}, usage("parameters are mutually exclusive: state|flags")
	case p.State == nil && p.Flags == nil:
		return service.Request{}, usage("one of the following is required: state, flags")
	case p.State != nil:
		switch *p.State {
		case StateEnabled:
			req = service.SetEnablement(p.Name, true)
		case StateDisabled:
			req = service.SetEnablement(p.Name, false)
		default:
			return service.Request{}, usage("value of state must be one of: %s, %s, got: %s",
				StateEnabled, StateDisabled, *p.State)
		}
	default:
		req = service.SetFlags(p.Name, *p.Flags)
	}

	if err := req.Validate(); err != nil {
		return service.Request{}, err
	}
	return req, nil
}

func usage(format string, args ...any) *service.Error {
	return &service.Error{Kind: service.KindUsage, Msg: fmt.Sprintf(format, args...)}
}
