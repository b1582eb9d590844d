package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/patterndb/pkg/buildinfo"
)

// Execute runs the patterndb CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "patterndb",
		Short: "patterndb builds and queries pattern databases",
		Long: `patterndb builds pattern databases for permutation state spaces by
exhaustive backward search over an abstract space, and answers O(1)
admissible heuristic values from them at query time.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVizCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
