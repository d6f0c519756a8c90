package rules

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier labels, lowest to highest.
const (
	TierBronze   = "BRONZE"
	TierPrata    = "PRATA"
	TierOuro     = "OURO"
	TierPlatina  = "PLATINA"
	TierDiamante = "DIAMANTE"
)

// TierMeta carries the cosmetic metadata the dashboard renders next to
// a tier label.
type TierMeta struct {
	Color   string `json:"color"`
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

var tierMeta = map[string]TierMeta{
	TierBronze:   {Color: "#cd7f32", Icon: "🥉", Message: "Início de jornada. Foco total!"},
	TierPrata:    {Color: "#C0C0C0", Icon: "⛓️", Message: "Ritmo consistente. Continue!"},
	TierOuro:     {Color: "#FFD700", Icon: "🥇", Message: "Alta performance! A meta está próxima!"},
	TierPlatina:  {Color: "#E5E4E2", Icon: "💠", Message: "Excelência pura! Quase lá!"},
	TierDiamante: {Color: "#b9f2ff", Icon: "💎", Message: "LENDÁRIO! Você zerou o jogo!"},
}

// MetaFor returns the display metadata paired with a tier label.
func MetaFor(tier string) TierMeta {
	return tierMeta[tier]
}

// Evaluation is the full derived state for an accumulated total under a
// given profile.
type Evaluation struct {
	Tier       string
	Meta       TierMeta
	Commission decimal.Decimal
	NextGoal   decimal.Decimal
	// Progress is the fraction of NextGoal already reached, capped at 1.
	Progress float64
}

// Profile is a named commission/tier rule set. Both observed variants
// of the dashboard are represented; which one runs is a startup choice.
type Profile interface {
	Name() string
	Evaluate(total decimal.Decimal) Evaluation
}

// Profile names accepted by ProfileByName.
const (
	ProfileFixed  = "fixed"
	ProfileTiered = "tiered"
)

// ProfileByName resolves a configured profile name to its strategy.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case ProfileFixed:
		return FixedGoal(), nil
	case ProfileTiered:
		return TieredGoals(), nil
	default:
		return nil, fmt.Errorf("unknown rules profile %q", name)
	}
}

// fixedGoal is the single-goal variant: one global target, tier bands
// as fractions of progress, flat 1% commission.
type fixedGoal struct {
	goal decimal.Decimal
	rate decimal.Decimal
}

// FixedGoal returns the fixed single-goal profile (R$ 50.000,00 target,
// flat 1% commission).
func FixedGoal() Profile {
	return fixedGoal{
		goal: decimal.NewFromInt(50000),
		rate: decimal.NewFromFloat(0.01),
	}
}

func (p fixedGoal) Name() string { return ProfileFixed }

func (p fixedGoal) Evaluate(total decimal.Decimal) Evaluation {
	percent := 0.0
	if !p.goal.IsZero() {
		percent = total.Div(p.goal).InexactFloat64()
	}

	var tier string
	switch {
	case percent < 0.2:
		tier = TierBronze
	case percent < 0.5:
		tier = TierPrata
	case percent < 0.8:
		tier = TierOuro
	case percent < 1.0:
		tier = TierPlatina
	default:
		tier = TierDiamante
	}

	progress := percent
	if progress > 1 {
		progress = 1
	}

	return Evaluation{
		Tier:       tier,
		Meta:       tierMeta[tier],
		Commission: total.Mul(p.rate),
		NextGoal:   p.goal,
		Progress:   progress,
	}
}

// tieredGoals is the ascending-breakpoints variant: the next goal is
// the smallest breakpoint above the total, the tier and the commission
// rate follow the highest breakpoint reached, and the rate applies to
// the whole total rather than the marginal slice.
type tieredGoals struct {
	breakpoints []decimal.Decimal
	tiers       []string
	rates       []decimal.Decimal
	ceiling     decimal.Decimal
}

// TieredGoals returns the stepped-commission profile with goals at
// 50k/80k/101k/150k and a 200k ceiling.
func TieredGoals() Profile {
	return tieredGoals{
		breakpoints: []decimal.Decimal{
			decimal.NewFromInt(50000),
			decimal.NewFromInt(80000),
			decimal.NewFromInt(101000),
			decimal.NewFromInt(150000),
		},
		tiers: []string{TierPrata, TierOuro, TierPlatina, TierDiamante},
		rates: []decimal.Decimal{
			decimal.NewFromFloat(0.005),
			decimal.NewFromFloat(0.01),
			decimal.NewFromFloat(0.0125),
			decimal.NewFromFloat(0.015),
		},
		ceiling: decimal.NewFromInt(200000),
	}
}

func (p tieredGoals) Name() string { return ProfileTiered }

func (p tieredGoals) Evaluate(total decimal.Decimal) Evaluation {
	tier := TierBronze
	rate := decimal.Zero
	nextGoal := p.ceiling

	for i, bp := range p.breakpoints {
		if total.GreaterThanOrEqual(bp) {
			tier = p.tiers[i]
			rate = p.rates[i]
		} else {
			nextGoal = bp
			break
		}
	}

	progress := 0.0
	if !nextGoal.IsZero() {
		progress = total.Div(nextGoal).InexactFloat64()
		if progress > 1 {
			progress = 1
		}
	}

	return Evaluation{
		Tier:       tier,
		Meta:       tierMeta[tier],
		Commission: total.Mul(rate),
		NextGoal:   nextGoal,
		Progress:   progress,
	}
}
