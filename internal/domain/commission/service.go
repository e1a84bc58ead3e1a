package commission

import "context"

// CommissionService owns the ledger writes: commission creation, forward
// status transitions and split registration.
type CommissionService interface {
	List(ctx context.Context) ([]CommissionResponse, error)
	Get(ctx context.Context, id string) (CommissionResponse, error)
	Create(ctx context.Context, req CreateCommissionRequest) (CommissionResponse, error)
	UpdateStatus(ctx context.Context, req UpdateCommissionStatusRequest) (CommissionResponse, error)
	AddPart(ctx context.Context, req AddPartRequest) (PartResponse, error)
	GetParts(ctx context.Context, commissionID string) ([]Part, error)
}
