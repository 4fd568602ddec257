package services

import (
	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// Pricing constants. All arithmetic uses exact decimal semantics so the
// same inputs always produce the same monetary value.
var (
	baseCost             = decimal.NewFromInt(50)
	costPerWeightUnit    = decimal.NewFromInt(10)
	highPriorityFactor   = decimal.RequireFromString("1.5")
	mediumPriorityFactor = decimal.RequireFromString("1.2")
)

// CostEstimator is a domain service computing the estimated price of a
// delivery from its weight and priority. The estimate is calculated once,
// at creation, and stored on the delivery; it is never recomputed.
//
// The formula is:
//
//	cost = (50 + weight * 10) * multiplier
//
// where the multiplier is 1.5 for High priority, 1.2 for Medium, and 1
// for anything else. The function is deterministic and side-effect-free.
//
// Example usage:
//
//	estimator := services.NewCostEstimator()
//	cost := estimator.Estimate(decimal.NewFromInt(5), delivery.High)
//	// cost = (50 + 5*10) * 1.5 = 150
type CostEstimator struct{}

// NewCostEstimator creates a new CostEstimator instance.
func NewCostEstimator() CostEstimator {
	return CostEstimator{}
}

// Estimate computes the estimated cost for the given weight and priority.
func (CostEstimator) Estimate(weight decimal.Decimal, priority delivery.Priority) decimal.Decimal {
	total := baseCost.Add(weight.Mul(costPerWeightUnit))

	switch priority {
	case delivery.High:
		total = total.Mul(highPriorityFactor)
	case delivery.Medium:
		total = total.Mul(mediumPriorityFactor)
	default:
		// Low and anything outside the known set fall through unmultiplied.
	}

	return total
}
