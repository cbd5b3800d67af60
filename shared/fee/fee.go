package fee

import (
	"math"
	"strings"

	"seatsafe/config"
	"seatsafe/shared/constant"
)

// Breakdown is the result of applying a platform fee rate to a gross amount.
// Fee and Net always add back up to Gross to the cent.
type Breakdown struct {
	Gross float64
	Fee   float64
	Net   float64
}

// Round2 rounds to two decimal places, half away from zero.
// Monetary rounding direction is not dictated by the product copy, so the
// conventional half-up choice is used and pinned down by tests.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Payout applies the flat payout rate to a gross withdrawal amount.
func Payout(gross, rate float64) Breakdown {
	f := Round2(gross * rate)

	return Breakdown{
		Gross: Round2(gross),
		Fee:   f,
		Net:   Round2(gross) - f,
	}
}

// Display computes the tier-dependent platform fee shown to an organization at
// booking time. It is informational: the parent pays the full service price and
// nothing derived here is ever persisted.
func Display(price, rate float64) Breakdown {
	f := Round2(price * rate)

	return Breakdown{
		Gross: Round2(price),
		Fee:   f,
		Net:   Round2(price) - f,
	}
}

// DisplayRate resolves the booking-time display rate for a subscription tier.
// Tier values are matched case-insensitively since the pricing page spells
// them capitalized while the schema stores them lowercase. Unknown tiers fall
// back to the Free rate.
func DisplayRate(cfg *config.Config, tier string) float64 {
	switch strings.ToLower(tier) {
	case constant.TierProfessional:
		return cfg.Fees.DisplayRateProfessional
	case constant.TierTeams:
		return cfg.Fees.DisplayRateTeams
	default:
		return cfg.Fees.DisplayRateFree
	}
}
