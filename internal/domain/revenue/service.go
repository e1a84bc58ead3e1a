package revenue

import "context"

// RevenueService computes the two turnover views and the KPI aggregates.
// Every method is a synchronous pass over ledger snapshots; results for a
// superseded request should be dropped by the caller, keyed on the
// effective parameters.
type RevenueService interface {
	EstimatedTurnover(ctx context.Context) (Summary, error)
	RealizedTurnover(ctx context.Context) (Summary, error)
	PeriodTotals(ctx context.Context, period Period) (PeriodTotals, error)
	Overview(ctx context.Context, period Period) (Overview, error)
	MonthlySeries(ctx context.Context, year int) (MonthlySeries, error)
}
