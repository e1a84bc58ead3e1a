package revenue

import (
	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/policy"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

// Summary is one turnover figure broken down by product category.
type Summary struct {
	LCA    decimal.Decimal `json:"lca"`
	Vie    decimal.Decimal `json:"vie"`
	NonVie decimal.Decimal `json:"non_vie"`
	Hypo   decimal.Decimal `json:"hypo"`
	Total  decimal.Decimal `json:"total"`
}

// Add attributes an amount to one category bucket and the running total.
func (s *Summary) Add(category policy.Category, amount decimal.Decimal) {
	switch category {
	case policy.CategoryLCA:
		s.LCA = s.LCA.Add(amount)
	case policy.CategoryVie:
		s.Vie = s.Vie.Add(amount)
	case policy.CategoryHypo:
		s.Hypo = s.Hypo.Add(amount)
	default:
		s.NonVie = s.NonVie.Add(amount)
	}
	s.Total = s.Total.Add(amount)
}

// Period selects the window for KPI totals.
type Period string

const (
	PeriodAll     Period = "all"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

func ValidPeriod(p string) bool {
	return validator.IsInSlice(p, []string{
		string(PeriodAll), string(PeriodWeek), string(PeriodMonth),
		string(PeriodQuarter), string(PeriodYear),
	})
}

// PeriodTotals is the paid/unpaid commission split over a window,
// independent of category. Drives the KPI cards.
type PeriodTotals struct {
	Period      Period          `json:"period"`
	Paid        decimal.Decimal `json:"paid"`
	Unpaid      decimal.Decimal `json:"unpaid"`
	Total       decimal.Decimal `json:"total"`
	PaidCount   int             `json:"paid_count"`
	UnpaidCount int             `json:"unpaid_count"`
	TotalCount  int             `json:"total_count"`
}

// CategoryCounts holds active-contract counts per category.
type CategoryCounts struct {
	LCA    int `json:"lca"`
	Vie    int `json:"vie"`
	NonVie int `json:"non_vie"`
	Hypo   int `json:"hypo"`
	Total  int `json:"total"`
}

// Overview is the combined dashboard aggregate.
type Overview struct {
	ActivePolicies    CategoryCounts `json:"active_policies"`
	PeriodPolicyCount int            `json:"period_policy_count"`
	PeriodCommissions PeriodTotals   `json:"period_commissions"`
	Estimated         Summary        `json:"estimated"`
	Realized          Summary        `json:"realized"`
}

// MonthBucket exposes all three view modes for one month so a caller can
// switch between them without recomputation.
type MonthBucket struct {
	Month     int     `json:"month"` // 1-12
	Estimated Summary `json:"estimated"`
	Realized  Summary `json:"realized"`
	Prime     Summary `json:"prime"` // raw premium
}

// MonthlySeries is the 12-bucket series of one calendar year.
type MonthlySeries struct {
	Year   int           `json:"year"`
	Months []MonthBucket `json:"months"`
}
