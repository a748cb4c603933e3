package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorfund-dev/vendorfund/internal/model"
)

func TestLoad_MissingFileGivesFreshSession(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, model.StateInitial, s.State)
	assert.NotEmpty(t, s.LastMessage)
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := model.Session{
		State:             model.StateTracking,
		VendorName:        "Raja's Thela",
		DailySales:        decimal.NewFromInt(60),
		BusinessType:      model.BusinessFood,
		OperatingDays:     7,
		RecommendedAmount: decimal.NewFromInt(37),
		IncentiveAmount:   decimal.NewFromInt(2),
		ConfirmedAmount:   decimal.NewFromInt(37),
		PayeeReference:    "payee_123",
		CurrentBalance:    decimal.NewFromInt(42),
		TotalBonuses:      decimal.NewFromInt(5),
		DaysTracked:       3,
		LastMessage:       "Growth bonus of 5.00 issued!",
	}
	require.NoError(t, Save(dir, s))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, s.State, loaded.State)
	assert.Equal(t, s.VendorName, loaded.VendorName)
	assert.Equal(t, s.BusinessType, loaded.BusinessType)
	assert.Equal(t, s.OperatingDays, loaded.OperatingDays)
	assert.Equal(t, s.DaysTracked, loaded.DaysTracked)
	assert.Equal(t, s.PayeeReference, loaded.PayeeReference)
	assert.Equal(t, s.LastMessage, loaded.LastMessage)
	assert.True(t, loaded.ConfirmedAmount.Equal(s.ConfirmedAmount))
	assert.True(t, loaded.CurrentBalance.Equal(s.CurrentBalance))
	assert.True(t, loaded.TotalBonuses.Equal(s.TotalBonuses))
	assert.True(t, loaded.IncentiveAmount.Equal(s.IncentiveAmount))
}

func TestRoundTrip_FractionalAmounts(t *testing.T) {
	dir := t.TempDir()

	s := model.NewSession()
	s.DailySales = decimal.RequireFromString("12.50")
	require.NoError(t, Save(dir, s))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, loaded.DailySales.Equal(decimal.RequireFromString("12.50")))
}
