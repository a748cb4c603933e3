package commands

import (
	"github.com/spf13/cobra"
)

func newConfirmCommand() *cobra.Command {
	var fundDir string

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Confirm and request the recommended advance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFund(fundDir)
			if err != nil {
				return err
			}

			s, err := f.machine.Confirm(f.session)
			if err != nil && !domainError(err) {
				return err
			}
			return f.finish(cmd, s, "")
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	return cmd
}

func newApproveCommand() *cobra.Command {
	var fundDir string

	cmd := &cobra.Command{
		Use:   "approve",
		Short: "Record approval of the requested advance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFund(fundDir)
			if err != nil {
				return err
			}

			s, err := f.machine.Approve(f.session)
			if err != nil && !domainError(err) {
				return err
			}
			return f.finish(cmd, s, "")
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	return cmd
}
