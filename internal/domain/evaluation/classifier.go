package evaluation

import (
	"math"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
)

// Classify maps a computed value to a status using the ratio's policy.
// The non-finite check runs before any policy, so an unbounded liquidity
// value classifies as INCOMPLETE and stays consistent with the clamped
// stored value.
func Classify(value float64, r *ratio.Ratio) Status {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return StatusIncomplete
	}

	switch r.Policy {
	case ratio.PolicyLiquidity:
		if r.LowerBound != nil && value >= *r.LowerBound {
			return StatusIdeal
		}
		return StatusNotIdeal

	case ratio.PolicySolvency:
		// Solvency demands a strictly positive margin: a net worth of
		// exactly the bound is not solvent.
		if r.LowerBound != nil {
			if value > *r.LowerBound {
				return StatusIdeal
			}
			return StatusNotIdeal
		}
		// Legacy fallback for a solvency ratio stored without bounds.
		if value > 0 {
			return StatusIdeal
		}
		return StatusNotIdeal

	default:
		return classifyStandard(value, r)
	}
}

func classifyStandard(value float64, r *ratio.Ratio) Status {
	// A ratio with no defined bounds cannot be judged ideal.
	if r.LowerBound == nil && r.UpperBound == nil {
		return StatusNotIdeal
	}

	meetsLower := true
	if r.LowerBound != nil {
		if r.IsLowerBoundInclusive {
			meetsLower = value >= *r.LowerBound
		} else {
			meetsLower = value > *r.LowerBound
		}
	}

	meetsUpper := true
	if r.UpperBound != nil {
		if r.IsUpperBoundInclusive {
			meetsUpper = value <= *r.UpperBound
		} else {
			meetsUpper = value < *r.UpperBound
		}
	}

	if meetsLower && meetsUpper {
		return StatusIdeal
	}
	return StatusNotIdeal
}
