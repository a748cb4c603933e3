package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorfund-dev/vendorfund/internal/config"
	"github.com/vendorfund-dev/vendorfund/internal/model"
	"github.com/vendorfund-dev/vendorfund/internal/store"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "Street Fund", "demo"))

	for _, d := range []string{"ledger", "import", filepath.Join("import", "processed")} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s", d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Street Fund", cfg.Fund.Name)
	assert.Equal(t, "demo", cfg.Fund.Profile)

	s, err := store.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, model.StateInitial, s.State)

	_, err = os.Stat(filepath.Join(dir, "payees.csv"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	assert.NoError(t, err, "init should create a git repo")
}

func TestRunInit_RupeeProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Street Fund", "rupee"))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "rupee", cfg.Fund.Profile)
	assert.Equal(t, "20000", cfg.PricingPolicy().MaxAdvance.String())
}
