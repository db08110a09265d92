// Package rcctl wraps OpenBSD's rcctl(8) service-control utility.
package rcctl

import "errors"

// DefaultCommand is the control executable resolved on PATH.
const DefaultCommand = "rcctl"

// DefaultUnameCommand is the system identification command used by Preflight.
const DefaultUnameCommand = "uname"

// DefaultPlatform is the operating system name rcctl is built for.
const DefaultPlatform = "OpenBSD"

// Config holds the names of the external commands and the expected platform.
type Config struct {
	// Command is the control executable name or absolute path.
	// Default: rcctl
	Command string `yaml:"command"`

	// UnameCommand is the system identification command.
	// Default: uname
	UnameCommand string `yaml:"uname_command"`

	// Platform is the exact uname output expected, without the trailing newline.
	// Default: OpenBSD
	Platform string `yaml:"platform"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Command == "" {
		c.Command = DefaultCommand
	}
	if c.UnameCommand == "" {
		c.UnameCommand = DefaultUnameCommand
	}
	if c.Platform == "" {
		c.Platform = DefaultPlatform
	}
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.Command == "" {
		return errors.New("rcctl: config: Command is required")
	}
	if c.UnameCommand == "" {
		return errors.New("rcctl: config: UnameCommand is required")
	}
	if c.Platform == "" {
		return errors.New("rcctl: config: Platform is required")
	}
	return nil
}
