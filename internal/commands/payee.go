package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vendorfund-dev/vendorfund/internal/payees"
)

func newPayeeCommand() *cobra.Command {
	payeeCmd := &cobra.Command{
		Use:   "payee",
		Short: "Manage payment destinations",
	}
	payeeCmd.AddCommand(newPayeeSetCommand())
	payeeCmd.AddCommand(newPayeeAddCommand())
	payeeCmd.AddCommand(newPayeeListCommand())
	return payeeCmd
}

func newPayeeSetCommand() *cobra.Command {
	var fundDir string

	cmd := &cobra.Command{
		Use:   "set <reference-or-vendor>",
		Short: "Set the session's payee reference",
		Long: "Sets the payment destination for the approved advance. The argument is " +
			"either a provider payee reference or the name of a registered vendor.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFund(fundDir)
			if err != nil {
				return err
			}

			reference := args[0]
			registry, err := payees.Load(f.dir)
			if err != nil {
				return err
			}
			if !registry.Exists(reference) {
				if resolved := registry.Resolve(reference); resolved != "" {
					reference = resolved
				}
			}

			s, err := f.machine.SetPayee(f.session, reference)
			if err != nil && !domainError(err) {
				return err
			}
			return f.finish(cmd, s, "")
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	return cmd
}

func newPayeeAddCommand() *cobra.Command {
	var fundDir string
	var reference string
	var vendor string
	var notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a payee reference for a vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(fundDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			registry, err := payees.Load(absDir)
			if err != nil {
				return err
			}
			registry.Add(payees.Payee{Reference: reference, VendorName: vendor, Notes: notes})
			if err := registry.Save(absDir); err != nil {
				return err
			}

			cmd.Printf("Registered payee %s for %s\n", reference, vendor)
			return nil
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	cmd.Flags().StringVar(&reference, "reference", "", "provider payee reference (required)")
	_ = cmd.MarkFlagRequired("reference")
	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name (required)")
	_ = cmd.MarkFlagRequired("vendor")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func newPayeeListCommand() *cobra.Command {
	var fundDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered payees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(fundDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			registry, err := payees.Load(absDir)
			if err != nil {
				return err
			}
			list := registry.All()
			if len(list) == 0 {
				cmd.Println("No payees registered.")
				return nil
			}
			for _, p := range list {
				cmd.Printf("%s\t%s\t%s\n", p.Reference, p.VendorName, p.Notes)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	return cmd
}
