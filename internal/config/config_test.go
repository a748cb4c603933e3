package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorfund-dev/vendorfund/internal/pricing"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default("Street Fund")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Street Fund", loaded.Fund.Name)
	assert.Equal(t, "TSD", loaded.Fund.Currency)
	assert.Equal(t, "demo", loaded.Fund.Profile)
	assert.True(t, loaded.Git.AutoCommit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, Save(path, Default("Street Fund")))

	t.Setenv("PAYMAN_CLIENT_ID", "env-id")
	t.Setenv("PAYMAN_CLIENT_SECRET", "env-secret")
	t.Setenv("PAYMAN_BASE_URL", "http://localhost:8080")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-id", loaded.Provider.ClientID)
	assert.Equal(t, "env-secret", loaded.Provider.ClientSecret)
	assert.Equal(t, "http://localhost:8080", loaded.Provider.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestPricingPolicy_Profile(t *testing.T) {
	cfg := Default("Street Fund")
	assert.True(t, cfg.PricingPolicy().MaxAdvance.Equal(pricing.DemoProfile().MaxAdvance))

	cfg.Fund.Profile = "rupee"
	assert.True(t, cfg.PricingPolicy().MaxAdvance.Equal(pricing.RupeeProfile().MaxAdvance))
}

func TestPricingPolicy_InlineOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default("Street Fund")
	policy := pricing.DemoProfile()
	policy.BonusThreshold = policy.BonusThreshold.Add(policy.BonusAmount)
	cfg.Policy = &policy
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, loaded.PricingPolicy().BonusThreshold.Equal(policy.BonusThreshold))
}

func TestLoad_PolicyTableFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	raw := `fund:
  name: Street Fund
  currency: INR
  profile: demo
policy:
  sales_floor: "5"
  tiers:
    - below: "10"
      amount: "20"
    - amount: "40"
      open: true
  operating_days_min: 6
  operating_days_bonus: "10"
  max_advance: "600"
  min_disbursable: "10"
  bonus_threshold: "50"
  bonus_amount: "5"
git:
  auto_commit: false
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "INR", loaded.Fund.Currency)
	p := loaded.PricingPolicy()
	require.Len(t, p.Tiers, 2)
	assert.Equal(t, "20", p.Tiers[0].Amount.String())
	assert.Equal(t, "10", p.Tiers[0].Below.String())
	assert.True(t, p.Tiers[1].Open)
}
