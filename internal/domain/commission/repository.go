package commission

import (
	"context"
	"time"
)

// CommissionRepository defines data access methods for the commission ledger.
// GetParts is the latency-bearing call of the whole core: generators must
// issue it once per commission, never once per (commission, collaborator).
type CommissionRepository interface {
	List(ctx context.Context) ([]Commission, error)
	ListByCreatedRange(ctx context.Context, from, to time.Time) ([]Commission, error)
	ListPaid(ctx context.Context) ([]Commission, error)
	GetByID(ctx context.Context, id string) (Commission, error)
	Create(ctx context.Context, c Commission) (Commission, error)
	UpdateStatus(ctx context.Context, id string, status CommissionStatus) error

	CreatePart(ctx context.Context, p Part) (Part, error)
	GetParts(ctx context.Context, commissionID string) ([]Part, error)
}
