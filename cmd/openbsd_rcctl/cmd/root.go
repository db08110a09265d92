// Package cmd implements the openbsd_rcctl command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sarevok-anchev/ansible-modules-extras/internal/module"
	"github.com/sarevok-anchev/ansible-modules-extras/internal/rcctl"
)

var (
	cfgFile  string
	logLevel string

	serviceName string
	state       string
	flags       string
	checkMode   bool
)

// newRunner constructs the process runner; tests replace it.
var newRunner = rcctl.NewExecRunner

// Build info set from main.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version info from build-time ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(versionTemplate())
}

func versionTemplate() string {
	return fmt.Sprintf("openbsd_rcctl version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate)
}

var rootCmd = &cobra.Command{
	Use:   "openbsd_rcctl [args-file]",
	Short: "Enable, disable or set flags of OpenBSD services via rcctl",
	Long: "openbsd_rcctl is an automation module that manages OpenBSD services through rcctl(8).\n" +
		"It enables or disables a service at boot, or sets the flags the service starts with,\n" +
		"and only runs a mutating rcctl command when the current state differs.\n\n" +
		"Invoked with an arguments file (JSON or YAML) it behaves as a binary module;\n" +
		"otherwise parameters are taken from --name, --state and --flags.\n" +
		"The result is written to stdout as a single JSON object.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "module config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error; overrides config)")

	rootCmd.Flags().StringVar(&serviceName, "name", "", "service name")
	rootCmd.Flags().StringVar(&state, "state", "", "desired state: enabled or disabled")
	rootCmd.Flags().StringVar(&flags, "flags", "", "desired service flags; an explicit empty value clears them")
	rootCmd.Flags().BoolVar(&checkMode, "check", false, "report what would change without running mutating commands")

	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(versionTemplate())
}

// Execute runs the root command. SIGINT and SIGTERM cancel the running
// rcctl invocation.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// paramsFromFlags builds module parameters from the command line. Only
// flags that were given on the command line are set, so --flags "" is an
// explicit empty value.
func paramsFromFlags(cmd *cobra.Command) module.Params {
	p := module.Params{Name: serviceName, CheckMode: checkMode}
	if cmd.Flags().Changed("state") {
		v := state
		p.State = &v
	}
	if cmd.Flags().Changed("flags") {
		v := flags
		p.Flags = &v
	}
	return p
}
