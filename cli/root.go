// Package cli wires the vessel command tree. Commands delegate to the
// config and credentials packages; this layer only parses arguments,
// resolves dependencies, and formats output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set via ldflags at build time.
	Version = "dev"
)

// EnvDebug enables verbose output when set.
const EnvDebug = "VESSEL_DEBUG"

// rootFlags holds persistent flag values shared by all commands.
type rootFlags struct {
	apiKey  string
	verbose bool
}

// debugf prints to stderr when verbose mode is on.
func (f *rootFlags) debugf(format string, args ...any) {
	if f.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// NewRootCmd builds the vessel command tree against deps.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "vessel <command>",
		Short:         "CLI client for the Vessel platform",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if os.Getenv(EnvDebug) != "" {
				flags.verbose = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.apiKey, "api-key", "", "API key override for this invocation")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newConfigCmd(deps),
		newAuthCmd(deps, flags),
		newTeamCmd(deps),
	)

	return rootCmd
}

// Execute runs the CLI with real dependencies and returns a process exit
// code. Validation and I/O errors print their message (and suggestion,
// when the error carries one) to stderr.
func Execute() int {
	deps, err := NewDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := NewRootCmd(deps).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
