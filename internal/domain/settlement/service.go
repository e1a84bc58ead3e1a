package settlement

import "context"

// SettlementService builds settlement statements from ledger data. The
// generator is read-only over the ledger; a failed part fetch aborts the
// whole generation rather than emitting a partial batch. Callers that
// supersede an in-flight generation should cancel its context and discard
// the stale result instead of merging it.
type SettlementService interface {
	GenerateStatements(ctx context.Context, req GenerateRequest) ([]Statement, error)
}
