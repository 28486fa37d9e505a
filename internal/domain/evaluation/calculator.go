package evaluation

import (
	"math"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"

	"github.com/shopspring/decimal"
)

// Value divides the side totals and applies the ratio's multiplier. The
// zero-denominator outcome depends on the ratio's policy:
//
//   - PolicyLiquidity: 0/0 is a neutral zero (no liquid assets against no
//     expenses); n/0 with n > 0 is unbounded liquidity, returned as +Inf so
//     the classifier sees the true magnitude. Never persisted as-is.
//   - Everything else: a ratio over a zero base is undefined, returned as
//     NaN.
//
// Non-finite returns are clamped to zero before storage by the caller.
func Value(r *ratio.Ratio, numerator, denominator decimal.Decimal) float64 {
	multiplier := r.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}

	if denominator.IsZero() {
		if r.Policy == ratio.PolicyLiquidity {
			if numerator.IsZero() {
				return 0
			}
			if numerator.IsPositive() {
				return math.Inf(1)
			}
		}
		return math.NaN()
	}

	raw := numerator.InexactFloat64() / denominator.InexactFloat64()
	return raw * multiplier
}

// ClampStored maps a computed value to what may be persisted. Decimal
// columns cannot hold NaN or infinities, so non-finite values are stored as
// zero; the status field keeps the truth.
func ClampStored(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
