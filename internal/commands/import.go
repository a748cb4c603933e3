package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vendorfund-dev/vendorfund/internal/importer"
	"github.com/vendorfund-dev/vendorfund/internal/ledger"
)

func newImportCommand() *cobra.Command {
	var fundDir string
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replay sales-history CSVs from the import inbox",
		Long: "Reads every CSV in <fund>/import/, records each day's sales through the " +
			"tracking state machine (issuing bonuses where due), and moves processed " +
			"files to import/processed/.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFund(fundDir)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			files, err := importer.Scan(f.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				cmd.Println("No sales CSVs found in import/.")
				return nil
			}

			for _, file := range files {
				if err := importFile(cmd, f, parser, file); err != nil {
					return err
				}
			}
			autoCommit(f, fmt.Sprintf("import: %d sales file(s) for %s", len(files), f.session.VendorName))
			return nil
		},
	}

	cmd.Flags().StringVar(&fundDir, "fund", ".", "fund directory")
	cmd.Flags().StringVar(&format, "format", "simple", "import file format")

	return cmd
}

func importFile(cmd *cobra.Command, f *fund, parser importer.Parser, file importer.FileInfo) error {
	src, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file.Name, err)
	}
	days, err := parser.Parse(src)
	src.Close()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file.Name, err)
	}

	cmd.Printf("%s: %d day(s)\n", file.Name, len(days))
	for _, day := range days {
		f.payer.calls = 0
		s, err := f.machine.RecordSales(cmd.Context(), f.session, day.Sales)
		if err != nil && !domainError(err) {
			return err
		}
		if err := f.save(s); err != nil {
			return err
		}
		if err == nil && bonusIssued(f) {
			if err := f.recordPayment(ledger.KindBonus); err != nil {
				return fmt.Errorf("recording bonus: %w", err)
			}
		}
		cmd.Printf("  %s: %s\n", day.Date.Format("2006-01-02"), s.LastMessage)
	}

	return importer.MarkProcessed(f.dir, file.Name)
}
