package fixtures

import "github.com/shopspring/decimal"

// Statutory contribution rates applied flat on the gross total. These are
// simplified approximations (no ceilings, no brackets, no annual allowances)
// and must not be presented as certified payroll output.
var (
	RateAVS  = decimal.NewFromFloat(0.053)
	RateAC   = decimal.NewFromFloat(0.011)
	RateLPP  = decimal.NewFromFloat(0.07)
	RateAANP = decimal.NewFromFloat(0.016)
)

// WithholdingRate holds the two source-tax rates of one canton.
type WithholdingRate struct {
	Single  decimal.Decimal
	Married decimal.Decimal
}

const withholdingDefaultKey = "DEFAULT"

// WithholdingRates maps canton codes to source-tax rates. Unknown cantons
// fall back to DEFAULT. Kept as data rather than code so it can move to
// tenant configuration without touching the generator.
var WithholdingRates = map[string]WithholdingRate{
	"GE": {Single: decimal.NewFromFloat(0.14), Married: decimal.NewFromFloat(0.12)},
	"VD": {Single: decimal.NewFromFloat(0.13), Married: decimal.NewFromFloat(0.11)},
	"NE": {Single: decimal.NewFromFloat(0.13), Married: decimal.NewFromFloat(0.11)},
	"BE": {Single: decimal.NewFromFloat(0.12), Married: decimal.NewFromFloat(0.10)},
	"FR": {Single: decimal.NewFromFloat(0.12), Married: decimal.NewFromFloat(0.10)},
	"ZH": {Single: decimal.NewFromFloat(0.11), Married: decimal.NewFromFloat(0.09)},
	"VS": {Single: decimal.NewFromFloat(0.11), Married: decimal.NewFromFloat(0.09)},

	withholdingDefaultKey: {Single: decimal.NewFromFloat(0.10), Married: decimal.NewFromFloat(0.08)},
}

// WithholdingRateFor returns the source-tax rate for a canton and marital
// situation, falling back to the DEFAULT row for unknown cantons.
func WithholdingRateFor(canton string, married bool) decimal.Decimal {
	rate, ok := WithholdingRates[canton]
	if !ok {
		rate = WithholdingRates[withholdingDefaultKey]
	}
	if married {
		return rate.Married
	}
	return rate.Single
}

// ReserveRateTiers are the only reserve retentions a collaborator may carry.
var ReserveRateTiers = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromInt(10),
	decimal.NewFromInt(20),
}

func IsReserveRateTier(rate decimal.Decimal) bool {
	for _, tier := range ReserveRateTiers {
		if rate.Equal(tier) {
			return true
		}
	}
	return false
}
