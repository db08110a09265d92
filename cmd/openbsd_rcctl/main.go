// Package main is the entry point for the openbsd_rcctl module binary.
package main

import (
	"os"

	"github.com/sarevok-anchev/ansible-modules-extras/cmd/openbsd_rcctl/cmd"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
