package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vendorfund-dev/vendorfund/internal/advance"
	"github.com/vendorfund-dev/vendorfund/internal/model"
)

// domainError reports whether err is a refused transition, a failed
// precondition, or a failed payment. Those are surfaced through the
// session message and never abort the CLI.
func domainError(err error) bool {
	var verr *advance.ValidationError
	var terr *advance.TransitionError
	var perr *advance.PaymentError
	return errors.As(err, &verr) || errors.As(err, &terr) || errors.As(err, &perr)
}

func newCalculateCommand() *cobra.Command {
	var fundDir string
	var vendor string
	var dailySales string
	var businessType string
	var operatingDays int

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Submit vendor details and calculate the recommended advance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFund(fundDir)
			if err != nil {
				return err
			}

			sales, err := decimal.NewFromString(dailySales)
			if err != nil {
				return fmt.Errorf("invalid daily sales %q: %w", dailySales, err)
			}

			s, err := f.machine.SubmitDetails(f.session, advance.Details{
				VendorName:    vendor,
				DailySales:    sales,
				BusinessType:  model.ParseBusinessType(businessType),
				OperatingDays: operatingDays,
			})
			if err != nil {
				if domainError(err) {
					return f.finish(cmd, s, "")
				}
				return err
			}

			s, err = f.machine.Calculate(s)
			if err != nil && !domainError(err) {
				return err
			}
			return f.finish(cmd, s, "")
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name (required)")
	_ = cmd.MarkFlagRequired("vendor")
	cmd.Flags().StringVar(&dailySales, "daily-sales", "0", "average daily sales")
	cmd.Flags().StringVar(&businessType, "business-type", "other", "business type (food, clothing, other)")
	cmd.Flags().IntVar(&operatingDays, "operating-days", 5, "operating days per week (1-7)")

	return cmd
}
