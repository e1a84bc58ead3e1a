package collaborator

import "context"

type CollaboratorService interface {
	List(ctx context.Context) ([]CollaboratorResponse, error)
	Get(ctx context.Context, id string) (CollaboratorResponse, error)
	Create(ctx context.Context, req CreateCollaboratorRequest) (CollaboratorResponse, error)
}
