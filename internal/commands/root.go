package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accrue-dev/accrue/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "accrue",
		Short:   "Simple-interest ledger for judgment debts",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newScheduleCommand())
	rootCmd.AddCommand(newFormCommand())

	return rootCmd
}
