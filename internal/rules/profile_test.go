package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProfileByName(t *testing.T) {
	fixed, err := ProfileByName("fixed")
	require.NoError(t, err)
	assert.Equal(t, ProfileFixed, fixed.Name())

	tiered, err := ProfileByName("tiered")
	require.NoError(t, err)
	assert.Equal(t, ProfileTiered, tiered.Name())

	_, err = ProfileByName("bogus")
	assert.Error(t, err)
}

func TestFixedGoalTiers(t *testing.T) {
	p := FixedGoal()

	tests := []struct {
		total string
		tier  string
	}{
		{"0", TierBronze},
		{"9999.99", TierBronze},
		{"10000", TierPrata},
		{"24999.99", TierPrata},
		{"25000", TierOuro},
		{"39999.99", TierOuro},
		{"40000", TierPlatina},
		{"49999.99", TierPlatina},
		{"50000", TierDiamante},
		{"120000", TierDiamante},
	}

	for _, tt := range tests {
		ev := p.Evaluate(dec(tt.total))
		assert.Equal(t, tt.tier, ev.Tier, "total %s", tt.total)
		assert.Equal(t, tierMeta[tt.tier], ev.Meta, "total %s", tt.total)
	}
}

func TestFixedGoalCommissionIsFlatOnePercent(t *testing.T) {
	p := FixedGoal()
	for _, total := range []string{"0", "1234.56", "50000", "200000"} {
		ev := p.Evaluate(dec(total))
		assert.True(t, dec(total).Mul(dec("0.01")).Equal(ev.Commission), "total %s", total)
		assert.True(t, dec("50000").Equal(ev.NextGoal))
	}
}

func TestTieredGoalsLevels(t *testing.T) {
	p := TieredGoals()

	tests := []struct {
		total string
		tier  string
	}{
		{"0", TierBronze},
		{"49999.99", TierBronze},
		{"50000", TierPrata},
		{"79999.99", TierPrata},
		{"80000", TierOuro},
		{"100999.99", TierOuro},
		{"101000", TierPlatina},
		{"149999.99", TierPlatina},
		{"150000", TierDiamante},
		{"250000", TierDiamante},
	}

	for _, tt := range tests {
		ev := p.Evaluate(dec(tt.total))
		assert.Equal(t, tt.tier, ev.Tier, "total %s", tt.total)
	}
}

func TestTieredGoalsNextGoal(t *testing.T) {
	p := TieredGoals()

	tests := []struct {
		total string
		next  string
	}{
		{"0", "50000"},
		{"49999", "50000"},
		{"50000", "80000"},
		{"79999.99", "80000"},
		{"80000", "101000"},
		{"101000", "150000"},
		{"150000", "200000"},
		{"500000", "200000"},
	}

	for _, tt := range tests {
		ev := p.Evaluate(dec(tt.total))
		assert.True(t, dec(tt.next).Equal(ev.NextGoal), "total %s: next goal %s, want %s", tt.total, ev.NextGoal, tt.next)
	}
}

func TestTieredGoalsCommission(t *testing.T) {
	p := TieredGoals()

	tests := []struct {
		total string
		rate  string
	}{
		{"0", "0"},
		{"49999.99", "0"},
		{"50000", "0.005"},
		{"80000", "0.01"},
		{"100999.99", "0.01"},
		{"101000", "0.0125"},
		{"150000", "0.015"},
		{"180000", "0.015"},
	}

	for _, tt := range tests {
		ev := p.Evaluate(dec(tt.total))
		want := dec(tt.total).Mul(dec(tt.rate))
		assert.True(t, want.Equal(ev.Commission), "total %s: commission %s, want %s", tt.total, ev.Commission, want)
	}
}

// Commission under the tiered profile must never decrease as the total
// grows, even across rate breakpoints.
func TestTieredGoalsCommissionMonotonic(t *testing.T) {
	p := TieredGoals()

	prev := decimal.Zero
	for total := int64(0); total <= 220000; total += 500 {
		ev := p.Evaluate(decimal.NewFromInt(total))
		assert.True(t, ev.Commission.GreaterThanOrEqual(prev),
			"commission decreased at total %d: %s < %s", total, ev.Commission, prev)
		prev = ev.Commission
	}
}

func TestProgressCappedAtOne(t *testing.T) {
	for _, p := range []Profile{FixedGoal(), TieredGoals()} {
		ev := p.Evaluate(dec("999999"))
		assert.LessOrEqual(t, ev.Progress, 1.0, p.Name())
		ev = p.Evaluate(decimal.Zero)
		assert.GreaterOrEqual(t, ev.Progress, 0.0, p.Name())
	}
}
