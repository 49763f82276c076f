package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at release time.
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cruisecheck",
		Short: "Cruise-control acceptance test against a simulated ECU bus",
		Long: `cruisecheck runs a two-step cruise-control acceptance scenario.

Step 1 powers the vehicle up and checks that cruise control is inactive.
Step 2 brings the vehicle into the 30-35 km/h activation window, presses
SET and checks that cruise control engaged. A failed step 1 skips step 2.

Verdicts are reported in the log only; the exit status is non-zero only
when the run could not be set up.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSignalsCmd(),
	)

	return rootCmd
}
