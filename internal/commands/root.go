package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendorfund-dev/vendorfund/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "vendorfund",
		Short:   "Working-capital advances and growth bonuses for street vendors",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCalculateCommand())
	rootCmd.AddCommand(newConfirmCommand())
	rootCmd.AddCommand(newApproveCommand())
	rootCmd.AddCommand(newPayeeCommand())
	rootCmd.AddCommand(newDisburseCommand())
	rootCmd.AddCommand(newRecordCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newLedgerCommand())
	rootCmd.AddCommand(newStatusCommand())

	return rootCmd
}
