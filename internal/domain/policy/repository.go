package policy

import "context"

// PolicyRepository defines data access methods for policies.
// The calculation services only ever read; writes exist for the CRUD shell.
type PolicyRepository interface {
	List(ctx context.Context) ([]Policy, error)
	ListActive(ctx context.Context) ([]Policy, error)
	GetByID(ctx context.Context, id string) (Policy, error)
	Create(ctx context.Context, p Policy) (Policy, error)
	UpdateStatus(ctx context.Context, id string, status PolicyStatus) error
}
