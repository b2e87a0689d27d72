package dataset

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// SeasonalTargetFactor lifts November and December targets.
const SeasonalTargetFactor = 1.3

// TargetPlan is the random draw behind one seller's targets.
type TargetPlan struct {
	Base   float64
	Growth float64
}

// NewTargetPlan draws a base in [15000, 25000) and a monthly growth rate in
// [0.03, 0.05).
func NewTargetPlan(r *rand.Rand) TargetPlan {
	return TargetPlan{
		Base:   uniform(r, 15000, 25000),
		Growth: uniform(r, 0.03, 0.05),
	}
}

// Targets walks months in order, compounding the base by the growth rate
// after each month. The seasonal factor only scales the emitted value.
func (p TargetPlan) Targets(s Seller, months []time.Time) []Target {
	out := make([]Target, 0, len(months))
	running := p.Base
	for _, m := range months {
		out = append(out, Target{
			SellerID:   s.ID,
			SellerName: s.Name,
			Month:      m,
			Amount:     decimal.NewFromFloat(running * seasonalFactor(m)).Round(2),
		})
		running *= 1 + p.Growth
	}
	return out
}

// GenerateTargets draws a plan per seller and expands it over months.
func GenerateTargets(r *rand.Rand, sellers []Seller, months []time.Time) []Target {
	var out []Target
	for _, s := range sellers {
		out = append(out, NewTargetPlan(r).Targets(s, months)...)
	}
	return out
}

func seasonalFactor(m time.Time) float64 {
	if m.Month() == time.November || m.Month() == time.December {
		return SeasonalTargetFactor
	}
	return 1.0
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
