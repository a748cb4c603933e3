package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorfund-dev/vendorfund/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var demoEngine = NewEngine(DemoProfile())

func TestPrice_BelowSalesFloor(t *testing.T) {
	for _, bt := range []model.BusinessType{model.BusinessFood, model.BusinessClothing, model.BusinessOther} {
		for days := 1; days <= 7; days++ {
			amount, incentive := demoEngine.Price(dec("3"), bt, days)
			assert.True(t, amount.IsZero(), "amount for %s/%d days", bt, days)
			assert.True(t, incentive.IsZero(), "incentive for %s/%d days", bt, days)
		}
	}
}

func TestPrice_TierBoundariesInclusive(t *testing.T) {
	// A value at a boundary prices into the tier above it.
	cases := []struct {
		sales string
		base  string
	}{
		{"4.99", "0"},
		{"5", "15"},
		{"9.99", "15"},
		{"10", "25"},
		{"14.99", "25"},
		{"15", "35"},
		{"5000", "35"},
	}
	for _, c := range cases {
		amount, _ := demoEngine.Price(dec(c.sales), model.BusinessOther, 1)
		assert.True(t, amount.Equal(dec(c.base)), "sales=%s: got %s, want %s", c.sales, amount, c.base)
	}
}

func TestPrice_Monotonic(t *testing.T) {
	prev := decimal.Zero
	for _, sales := range []string{"1", "5", "7", "10", "12", "15", "100"} {
		amount, _ := demoEngine.Price(dec(sales), model.BusinessOther, 1)
		assert.True(t, amount.GreaterThanOrEqual(prev), "amount dropped at sales=%s", sales)
		prev = amount
	}
}

func TestPrice_FoodIncentive(t *testing.T) {
	// base 25 -> x1.1 = 27.5, incentive 2.5, truncated.
	amount, incentive := demoEngine.Price(dec("12"), model.BusinessFood, 1)
	assert.True(t, amount.Equal(dec("27")), "amount %s", amount)
	assert.True(t, incentive.Equal(dec("2")), "incentive %s", incentive)
}

func TestPrice_FoodWithDaysBonus(t *testing.T) {
	// base 25 -> x1.1 = 27.5 -> +10 = 37.5 -> truncate 37, incentive 2.
	amount, incentive := demoEngine.Price(dec("12"), model.BusinessFood, 7)
	assert.True(t, amount.Equal(dec("37")), "amount %s", amount)
	assert.True(t, incentive.Equal(dec("2")), "incentive %s", incentive)
}

func TestPrice_ClothingMultiplier(t *testing.T) {
	// base 25 -> x0.9 = 22.5 -> truncate 22, no incentive.
	amount, incentive := demoEngine.Price(dec("12"), model.BusinessClothing, 1)
	assert.True(t, amount.Equal(dec("22")), "amount %s", amount)
	assert.True(t, incentive.IsZero())
}

func TestPrice_OperatingDaysBonusAtSix(t *testing.T) {
	five, _ := demoEngine.Price(dec("12"), model.BusinessOther, 5)
	six, _ := demoEngine.Price(dec("12"), model.BusinessOther, 6)
	assert.True(t, six.Sub(five).Equal(dec("10")), "bonus should kick in at 6 days: %s vs %s", five, six)
}

func TestPrice_Cap(t *testing.T) {
	policy := DemoProfile()
	policy.MaxAdvance = decimal.NewFromInt(30)
	engine := NewEngine(policy)

	amount, _ := engine.Price(dec("20"), model.BusinessFood, 7)
	assert.True(t, amount.Equal(dec("30")), "amount %s should be capped", amount)
}

func TestPrice_CollapseBelowMinDisbursable(t *testing.T) {
	policy := DemoProfile()
	policy.MinDisbursable = decimal.NewFromInt(50)
	engine := NewEngine(policy)

	amount, incentive := engine.Price(dec("7"), model.BusinessFood, 1)
	assert.True(t, amount.IsZero(), "amount %s", amount)
	assert.True(t, incentive.IsZero(), "incentive %s", incentive)
}

func TestPrice_Deterministic(t *testing.T) {
	a1, i1 := demoEngine.Price(dec("12"), model.BusinessFood, 7)
	a2, i2 := demoEngine.Price(dec("12"), model.BusinessFood, 7)
	assert.True(t, a1.Equal(a2))
	assert.True(t, i1.Equal(i2))
}

func TestRupeeProfile(t *testing.T) {
	engine := NewEngine(RupeeProfile())

	// 1500 daily sales, food, 7 days: 10000 x1.1 = 11000 + 2000 = 13000.
	amount, incentive := engine.Price(dec("1500"), model.BusinessFood, 7)
	assert.True(t, amount.Equal(dec("13000")), "amount %s", amount)
	assert.True(t, incentive.Equal(dec("1000")), "incentive %s", incentive)

	// Top tier.
	amount, _ = engine.Price(dec("2500"), model.BusinessFood, 7)
	require.True(t, amount.Equal(dec("18500")), "amount %s", amount)
}

func TestProfileByName(t *testing.T) {
	assert.True(t, ProfileByName("rupee").MaxAdvance.Equal(dec("20000")))
	assert.True(t, ProfileByName("demo").MaxAdvance.Equal(dec("600")))
	assert.True(t, ProfileByName("").MaxAdvance.Equal(dec("600")))
}

func TestParseBusinessType_CaseInsensitive(t *testing.T) {
	assert.Equal(t, model.BusinessFood, model.ParseBusinessType("Food"))
	assert.Equal(t, model.BusinessFood, model.ParseBusinessType("FOOD"))
	assert.Equal(t, model.BusinessClothing, model.ParseBusinessType(" clothing "))
	assert.Equal(t, model.BusinessOther, model.ParseBusinessType("electronics"))
	assert.Equal(t, model.BusinessOther, model.ParseBusinessType(""))
}
