package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vendorfund-dev/vendorfund/internal/ledger"
	"github.com/vendorfund-dev/vendorfund/internal/store"
)

func newStatusCommand() *cobra.Command {
	var fundDir string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active vendor session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(fundDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			s, err := store.Load(absDir)
			if err != nil {
				return err
			}

			cmd.Printf("State:           %s\n", s.State)
			if s.VendorName != "" {
				cmd.Printf("Vendor:          %s (%s, %d days/week)\n", s.VendorName, s.BusinessType, s.OperatingDays)
			}
			if s.RecommendedAmount.IsPositive() {
				cmd.Printf("Recommended:     %s (incentive %s)\n", s.RecommendedAmount.StringFixed(2), s.IncentiveAmount.StringFixed(2))
			}
			if s.ConfirmedAmount.IsPositive() {
				cmd.Printf("Confirmed:       %s\n", s.ConfirmedAmount.StringFixed(2))
			}
			if s.PayeeReference != "" {
				cmd.Printf("Payee:           %s\n", s.PayeeReference)
			}
			cmd.Printf("Current balance: %s\n", s.CurrentBalance.StringFixed(2))
			cmd.Printf("Total bonuses:   %s\n", s.TotalBonuses.StringFixed(2))
			cmd.Printf("Days tracked:    %d\n", s.DaysTracked)
			cmd.Printf("Last message:    %s\n", s.LastMessage)
			return nil
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	return cmd
}

func newLedgerCommand() *cobra.Command {
	var fundDir string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "List issued payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(fundDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			entries, err := ledger.Read(absDir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No payments issued yet.")
				return nil
			}

			for _, e := range entries {
				cmd.Printf("%s\t%s\t%s\t%s %s\t%s\t%s\n",
					e.EntryID,
					e.Timestamp.Format("2006-01-02"),
					e.Kind,
					e.Amount.StringFixed(2),
					e.Currency,
					e.Vendor,
					e.TransactionID,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	return cmd
}
