package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vendorfund-dev/vendorfund/internal/advance"
	"github.com/vendorfund-dev/vendorfund/internal/config"
	"github.com/vendorfund-dev/vendorfund/internal/gitops"
	"github.com/vendorfund-dev/vendorfund/internal/ledger"
	"github.com/vendorfund-dev/vendorfund/internal/model"
	"github.com/vendorfund-dev/vendorfund/internal/payman"
	"github.com/vendorfund-dev/vendorfund/internal/pricing"
	"github.com/vendorfund-dev/vendorfund/internal/store"
)

// recordingPayer wraps a Payer and keeps the last submitted call so
// commands can write ledger rows after a success.
type recordingPayer struct {
	inner model.Payer

	calls      int
	lastAmount decimal.Decimal
	lastMemo   string
	lastResult model.PaymentResult
}

func (r *recordingPayer) SubmitPayment(ctx context.Context, destination string, amount decimal.Decimal, memo, currency string) model.PaymentResult {
	res := r.inner.SubmitPayment(ctx, destination, amount, memo, currency)
	r.calls++
	r.lastAmount = amount
	r.lastMemo = memo
	r.lastResult = res
	return res
}

// fund bundles everything a session command needs: the fund dir, its
// config, the stored session, and a machine wired to the provider.
type fund struct {
	dir     string
	cfg     *config.Config
	session model.Session
	machine *advance.Machine
	payer   *recordingPayer
}

func loadFund(dir string) (*fund, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading fund config (run `vendorfund init` first?): %w", err)
	}

	session, err := store.Load(absDir)
	if err != nil {
		return nil, err
	}

	payer := &recordingPayer{inner: payman.NewClient(payman.Options{
		BaseURL:      cfg.Provider.BaseURL,
		ClientID:     cfg.Provider.ClientID,
		ClientSecret: cfg.Provider.ClientSecret,
		Strict:       cfg.Provider.StrictSuccess,
	})}

	engine := pricing.NewEngine(cfg.PricingPolicy())
	return &fund{
		dir:     absDir,
		cfg:     cfg,
		session: session,
		machine: advance.NewMachine(engine, payer, cfg.Fund.Currency),
		payer:   payer,
	}, nil
}

// save persists the updated session.
func (f *fund) save(s model.Session) error {
	f.session = s
	return store.Save(f.dir, s)
}

// recordPayment appends a ledger row for the last successful payment.
func (f *fund) recordPayment(kind ledger.Kind) error {
	now := time.Now()
	entryID, err := ledger.NextEntryID(f.dir, now)
	if err != nil {
		return err
	}
	return ledger.Append(f.dir, []ledger.Entry{{
		EntryID:       entryID,
		Timestamp:     now,
		Vendor:        f.session.VendorName,
		Kind:          kind,
		Amount:        f.payer.lastAmount,
		Currency:      f.machine.Currency(),
		TransactionID: f.payer.lastResult.TransactionID,
		Memo:          f.payer.lastMemo,
	}})
}

// finish saves the session, runs the optional auto-commit, and prints
// the session message. Domain errors (validation, refused transitions,
// payment failures) are already reflected in the message and must not
// abort the CLI, so they are swallowed here.
func (f *fund) finish(cmd *cobra.Command, s model.Session, commitMsg string) error {
	if err := f.save(s); err != nil {
		return err
	}
	if commitMsg != "" {
		autoCommit(f, commitMsg)
	}
	cmd.Println(s.LastMessage)
	return nil
}

// parseSales parses a sales amount flag value.
func parseSales(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid daily sales %q: %w", v, err)
	}
	return d, nil
}

// autoCommit is best-effort: a missing git binary or repo never blocks
// a money movement that already happened.
func autoCommit(f *fund, message string) {
	if !f.cfg.Git.AutoCommit || !gitops.IsRepo(f.dir) {
		return
	}
	_, _ = gitops.CommitAll(f.dir, message, f.cfg.Git.AuthorName, f.cfg.Git.AuthorEmail)
}
