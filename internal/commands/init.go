package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vendorfund-dev/vendorfund/internal/config"
	"github.com/vendorfund-dev/vendorfund/internal/gitops"
	"github.com/vendorfund-dev/vendorfund/internal/model"
	"github.com/vendorfund-dev/vendorfund/internal/payees"
	"github.com/vendorfund-dev/vendorfund/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var profile string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new fund directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, profile)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "fund name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&profile, "profile", "demo", "pricing policy profile (demo or rupee)")

	return cmd
}

func runInit(dir, name, profile string) error {
	dirs := []string{
		"ledger",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	cfg.Fund.Profile = profile
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Empty payee registry.
	if err := payees.NewService(nil).Save(dir); err != nil {
		return fmt.Errorf("writing payee registry: %w", err)
	}

	// Fresh session.
	if err := store.Save(dir, model.NewSession()); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}
	if cfg.Git.AutoCommit {
		if _, err := gitops.CommitAll(dir, "init: new fund "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized fund %q in %s\n", name, dir)
	return nil
}
