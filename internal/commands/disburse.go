package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vendorfund-dev/vendorfund/internal/ledger"
	"github.com/vendorfund-dev/vendorfund/internal/model"
)

func newDisburseCommand() *cobra.Command {
	var fundDir string

	cmd := &cobra.Command{
		Use:   "disburse",
		Short: "Disburse the approved advance to the vendor's payee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFund(fundDir)
			if err != nil {
				return err
			}

			s, err := f.machine.Disburse(cmd.Context(), f.session)
			if err != nil {
				if domainError(err) {
					return f.finish(cmd, s, "")
				}
				return err
			}

			// Only a confirmed success reaches the ledger.
			f.session = s
			if err := f.recordPayment(ledger.KindDisbursement); err != nil {
				return fmt.Errorf("recording disbursement: %w", err)
			}
			return f.finish(cmd, s, fmt.Sprintf("disburse: advance for %s", s.VendorName))
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	return cmd
}

func newRecordCommand() *cobra.Command {
	var fundDir string
	var dailySales string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a tracked day's sales and issue any growth bonus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFund(fundDir)
			if err != nil {
				return err
			}

			sales, err := parseSales(dailySales)
			if err != nil {
				return err
			}

			s, err := f.machine.RecordSales(cmd.Context(), f.session, sales)
			if err != nil {
				if domainError(err) {
					return f.finish(cmd, s, "")
				}
				return err
			}

			f.session = s
			if bonusIssued(f) {
				if err := f.recordPayment(ledger.KindBonus); err != nil {
					return fmt.Errorf("recording bonus: %w", err)
				}
			}
			return f.finish(cmd, s, fmt.Sprintf("record: day %d sales for %s", s.DaysTracked, s.VendorName))
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	cmd.Flags().StringVar(&dailySales, "daily-sales", "", "the day's sales (required)")
	_ = cmd.MarkFlagRequired("daily-sales")

	return cmd
}

// bonusIssued reports whether the last action submitted a successful
// bonus payment. Below-threshold days make no payment call at all.
func bonusIssued(f *fund) bool {
	return f.payer.calls > 0 && f.payer.lastResult.Outcome == model.OutcomeSuccess
}
