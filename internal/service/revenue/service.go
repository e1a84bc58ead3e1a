package revenue

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/commission"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/policy"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/revenue"
	"github.com/swisscourtage/brokerage-backend-go/internal/fixtures"
	"golang.org/x/sync/errgroup"
)

type RevenueServiceImpl struct {
	policyRepo     policy.PolicyRepository
	commissionRepo commission.CommissionRepository
}

func NewRevenueService(
	policyRepo policy.PolicyRepository,
	commissionRepo commission.CommissionRepository,
) revenue.RevenueService {
	return &RevenueServiceImpl{
		policyRepo:     policyRepo,
		commissionRepo: commissionRepo,
	}
}

// EstimatedTurnover projects the value of the active book. Vie policies use
// their real commission amount when the ledger has one; every other category
// applies its configured multiplier to the premium.
func (s *RevenueServiceImpl) EstimatedTurnover(ctx context.Context) (revenue.Summary, error) {
	policies, err := s.policyRepo.ListActive(ctx)
	if err != nil {
		return revenue.Summary{}, fmt.Errorf("failed to list active policies: %w", err)
	}

	commissions, err := s.commissionRepo.List(ctx)
	if err != nil {
		return revenue.Summary{}, fmt.Errorf("failed to list commissions: %w", err)
	}
	firstCommission := firstCommissionByPolicy(commissions)

	var summary revenue.Summary
	for _, p := range policies {
		category := policy.Categorize(p)
		summary.Add(category, estimatedContribution(p, category, firstCommission))
	}
	return summary, nil
}

// RealizedTurnover sums paid commissions at face value, attributed to the
// category of their policy. Paid commissions whose policy is gone are
// skipped rather than guessed into a bucket.
func (s *RevenueServiceImpl) RealizedTurnover(ctx context.Context) (revenue.Summary, error) {
	paid, err := s.commissionRepo.ListPaid(ctx)
	if err != nil {
		return revenue.Summary{}, fmt.Errorf("failed to list paid commissions: %w", err)
	}

	policyByID, err := s.policyIndex(ctx)
	if err != nil {
		return revenue.Summary{}, err
	}

	var summary revenue.Summary
	for _, c := range paid {
		p, ok := policyByID[c.PolicyID]
		if !ok {
			continue
		}
		summary.Add(policy.Categorize(p), c.Amount)
	}
	return summary, nil
}

// PeriodTotals splits commission amounts created inside the window into
// paid and non-paid, independent of category.
func (s *RevenueServiceImpl) PeriodTotals(ctx context.Context, period revenue.Period) (revenue.PeriodTotals, error) {
	commissions, err := s.commissionRepo.List(ctx)
	if err != nil {
		return revenue.PeriodTotals{}, fmt.Errorf("failed to list commissions: %w", err)
	}

	since, bounded := periodStart(period, time.Now())
	totals := revenue.PeriodTotals{Period: period}
	for _, c := range commissions {
		if bounded && c.CreatedAt.Before(since) {
			continue
		}
		totals.Total = totals.Total.Add(c.Amount)
		totals.TotalCount++
		if c.Status == commission.StatusPaid {
			totals.Paid = totals.Paid.Add(c.Amount)
			totals.PaidCount++
		} else {
			totals.Unpaid = totals.Unpaid.Add(c.Amount)
			totals.UnpaidCount++
		}
	}
	return totals, nil
}

// Overview aggregates the KPI cards in parallel, one goroutine per
// sub-aggregation.
func (s *RevenueServiceImpl) Overview(ctx context.Context, period revenue.Period) (revenue.Overview, error) {
	var overview revenue.Overview

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		policies, err := s.policyRepo.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list active policies: %w", err)
		}
		since, bounded := periodStart(period, time.Now())
		for _, p := range policies {
			switch policy.Categorize(p) {
			case policy.CategoryLCA:
				overview.ActivePolicies.LCA++
			case policy.CategoryVie:
				overview.ActivePolicies.Vie++
			case policy.CategoryHypo:
				overview.ActivePolicies.Hypo++
			default:
				overview.ActivePolicies.NonVie++
			}
			overview.ActivePolicies.Total++
			if !bounded || !p.CreatedAt.Before(since) {
				overview.PeriodPolicyCount++
			}
		}
		return nil
	})

	g.Go(func() error {
		totals, err := s.PeriodTotals(gCtx, period)
		if err != nil {
			return err
		}
		overview.PeriodCommissions = totals
		return nil
	})

	g.Go(func() error {
		estimated, err := s.EstimatedTurnover(gCtx)
		if err != nil {
			return err
		}
		overview.Estimated = estimated
		return nil
	})

	g.Go(func() error {
		realized, err := s.RealizedTurnover(gCtx)
		if err != nil {
			return err
		}
		overview.Realized = realized
		return nil
	})

	if err := g.Wait(); err != nil {
		return revenue.Overview{}, err
	}
	return overview, nil
}

// MonthlySeries recomputes all three view modes for the twelve months of a
// year. Premium-based views (estimated, prime) bucket by policy creation
// date; the realized view buckets by commission date. Every bucket carries
// all four category totals under every mode so callers can switch views
// without another pass.
func (s *RevenueServiceImpl) MonthlySeries(ctx context.Context, year int) (revenue.MonthlySeries, error) {
	policies, err := s.policyRepo.ListActive(ctx)
	if err != nil {
		return revenue.MonthlySeries{}, fmt.Errorf("failed to list active policies: %w", err)
	}
	commissions, err := s.commissionRepo.List(ctx)
	if err != nil {
		return revenue.MonthlySeries{}, fmt.Errorf("failed to list commissions: %w", err)
	}

	firstCommission := firstCommissionByPolicy(commissions)
	policyByID, err := s.policyIndex(ctx)
	if err != nil {
		return revenue.MonthlySeries{}, err
	}

	series := revenue.MonthlySeries{Year: year, Months: make([]revenue.MonthBucket, 12)}
	for i := range series.Months {
		series.Months[i].Month = i + 1
	}

	for _, p := range policies {
		if p.CreatedAt.Year() != year {
			continue
		}
		bucket := &series.Months[p.CreatedAt.Month()-1]
		category := policy.Categorize(p)
		bucket.Estimated.Add(category, estimatedContribution(p, category, firstCommission))
		bucket.Prime.Add(category, annualPremium(p))
	}

	for _, c := range commissions {
		if c.Status != commission.StatusPaid {
			continue
		}
		date := c.EffectiveDate()
		if date.Year() != year {
			continue
		}
		p, ok := policyByID[c.PolicyID]
		if !ok {
			continue
		}
		series.Months[date.Month()-1].Realized.Add(policy.Categorize(p), c.Amount)
	}

	return series, nil
}

func (s *RevenueServiceImpl) policyIndex(ctx context.Context) (map[string]policy.Policy, error) {
	policies, err := s.policyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	index := make(map[string]policy.Policy, len(policies))
	for _, p := range policies {
		index[p.ID] = p
	}
	return index, nil
}

// firstCommissionByPolicy keeps the earliest-created commission per policy,
// used as the real figure for vie estimations.
func firstCommissionByPolicy(commissions []commission.Commission) map[string]commission.Commission {
	index := make(map[string]commission.Commission)
	for _, c := range commissions {
		existing, ok := index[c.PolicyID]
		if !ok || c.CreatedAt.Before(existing.CreatedAt) {
			index[c.PolicyID] = c
		}
	}
	return index
}

func estimatedContribution(p policy.Policy, category policy.Category, firstCommission map[string]commission.Commission) decimal.Decimal {
	switch category {
	case policy.CategoryVie:
		if c, ok := firstCommission[p.ID]; ok {
			return c.Amount
		}
		return p.PremiumYearly.Mul(fixtures.EstimateVieYearlyFallback)
	case policy.CategoryLCA:
		return p.PremiumMonthly.Mul(fixtures.EstimateLCAMonthlyFactor)
	case policy.CategoryHypo:
		return p.PremiumYearly.Mul(fixtures.EstimateHypoYearlyFactor)
	default:
		return p.PremiumYearly.Mul(fixtures.EstimateNonVieYearly)
	}
}

// annualPremium is the raw "prime" figure of a policy: the yearly premium,
// or twelve monthly premiums when only a monthly one is recorded.
func annualPremium(p policy.Policy) decimal.Decimal {
	if p.PremiumYearly.IsPositive() {
		return p.PremiumYearly
	}
	return p.PremiumMonthly.Mul(decimal.NewFromInt(12))
}

// periodStart maps a KPI period to its lower bound relative to now. The
// "all" period is unbounded.
func periodStart(period revenue.Period, now time.Time) (time.Time, bool) {
	switch period {
	case revenue.PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case revenue.PeriodMonth:
		return now.AddDate(0, -1, 0), true
	case revenue.PeriodQuarter:
		return now.AddDate(0, -3, 0), true
	case revenue.PeriodYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
