package fixtures

import "github.com/shopspring/decimal"

// Estimation multipliers for the projected-turnover view. Vie uses a real
// commission amount when one exists; the multiplier below is its fallback.
var (
	EstimateVieYearlyFallback = decimal.NewFromFloat(0.05)
	EstimateLCAMonthlyFactor  = decimal.NewFromInt(16)
	EstimateHypoYearlyFactor  = decimal.NewFromFloat(0.01)
	EstimateNonVieYearly      = decimal.NewFromFloat(0.15)
)
