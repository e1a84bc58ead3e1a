package collaborator

import "context"

// CollaboratorRepository defines data access methods for collaborators.
type CollaboratorRepository interface {
	List(ctx context.Context) ([]Collaborator, error)
	GetByID(ctx context.Context, id string) (Collaborator, error)
	GetByIDs(ctx context.Context, ids []string) ([]Collaborator, error)
	Create(ctx context.Context, c Collaborator) (Collaborator, error)
}
