package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/database"
)

type collaboratorRepository struct {
	db *database.DB
}

func NewCollaboratorRepository(db *database.DB) collaborator.CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

const collaboratorColumns = `id, name, profession, status, fixed_salary,
	commission_rate_lca, commission_rate_vie,
	manager_commission_rate_lca, manager_commission_rate_vie,
	bonus_rate, reserve_rate, contract_type, canton, civil_status, manager_id, created_at`

func scanCollaborator(row pgx.Row) (collaborator.Collaborator, error) {
	var c collaborator.Collaborator
	err := row.Scan(
		&c.ID, &c.Name, &c.Profession, &c.Status, &c.FixedSalary,
		&c.CommissionRateLCA, &c.CommissionRateVIE,
		&c.ManagerCommissionRateLCA, &c.ManagerCommissionRateVIE,
		&c.BonusRate, &c.ReserveRate, &c.ContractType, &c.Canton, &c.CivilStatus, &c.ManagerID, &c.CreatedAt,
	)
	return c, err
}

func (r *collaboratorRepository) list(ctx context.Context, query string, args ...interface{}) ([]collaborator.Collaborator, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}
	defer rows.Close()

	var collaborators []collaborator.Collaborator
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collaborator: %w", err)
		}
		collaborators = append(collaborators, c)
	}
	return collaborators, rows.Err()
}

func (r *collaboratorRepository) List(ctx context.Context) ([]collaborator.Collaborator, error) {
	query := `
		SELECT ` + collaboratorColumns + `
		FROM collaborators
		ORDER BY name
	`
	return r.list(ctx, query)
}

func (r *collaboratorRepository) GetByID(ctx context.Context, id string) (collaborator.Collaborator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + collaboratorColumns + `
		FROM collaborators
		WHERE id = $1
	`

	c, err := scanCollaborator(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return collaborator.Collaborator{}, collaborator.ErrCollaboratorNotFound
		}
		return collaborator.Collaborator{}, fmt.Errorf("failed to get collaborator: %w", err)
	}
	return c, nil
}

func (r *collaboratorRepository) GetByIDs(ctx context.Context, ids []string) ([]collaborator.Collaborator, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + collaboratorColumns + `
		FROM collaborators
		WHERE id = ANY($1)
		ORDER BY name
	`
	return r.list(ctx, query, ids)
}

func (r *collaboratorRepository) Create(ctx context.Context, c collaborator.Collaborator) (collaborator.Collaborator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO collaborators (id, name, profession, status, fixed_salary,
			commission_rate_lca, commission_rate_vie,
			manager_commission_rate_lca, manager_commission_rate_vie,
			bonus_rate, reserve_rate, contract_type, canton, civil_status, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + collaboratorColumns + `
	`

	created, err := scanCollaborator(q.QueryRow(ctx, query,
		uuid.NewString(), c.Name, c.Profession, c.Status, c.FixedSalary,
		c.CommissionRateLCA, c.CommissionRateVIE,
		c.ManagerCommissionRateLCA, c.ManagerCommissionRateVIE,
		c.BonusRate, c.ReserveRate, c.ContractType, c.Canton, c.CivilStatus, c.ManagerID,
	))
	if err != nil {
		return collaborator.Collaborator{}, fmt.Errorf("failed to create collaborator: %w", err)
	}
	return created, nil
}
