package policy

import "context"

type PolicyService interface {
	List(ctx context.Context) ([]PolicyResponse, error)
	Get(ctx context.Context, id string) (PolicyResponse, error)
	Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	UpdateStatus(ctx context.Context, req UpdatePolicyStatusRequest) (PolicyResponse, error)
}
