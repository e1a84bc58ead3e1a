package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/commission"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/database"
)

type commissionRepository struct {
	db *database.DB
}

func NewCommissionRepository(db *database.DB) commission.CommissionRepository {
	return &commissionRepository{db: db}
}

const commissionColumns = `id, policy_id, amount, type, status, date, created_at`

func scanCommission(row pgx.Row) (commission.Commission, error) {
	var c commission.Commission
	err := row.Scan(&c.ID, &c.PolicyID, &c.Amount, &c.Type, &c.Status, &c.Date, &c.CreatedAt)
	return c, err
}

func (r *commissionRepository) list(ctx context.Context, query string, args ...interface{}) ([]commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	defer rows.Close()

	var commissions []commission.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		commissions = append(commissions, c)
	}
	return commissions, rows.Err()
}

func (r *commissionRepository) List(ctx context.Context) ([]commission.Commission, error) {
	query := `
		SELECT ` + commissionColumns + `
		FROM commissions
		ORDER BY created_at
	`
	return r.list(ctx, query)
}

func (r *commissionRepository) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]commission.Commission, error) {
	query := `
		SELECT ` + commissionColumns + `
		FROM commissions
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at
	`
	return r.list(ctx, query, from, to)
}

func (r *commissionRepository) ListPaid(ctx context.Context) ([]commission.Commission, error) {
	query := `
		SELECT ` + commissionColumns + `
		FROM commissions
		WHERE status = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, commission.StatusPaid)
}

func (r *commissionRepository) GetByID(ctx context.Context, id string) (commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + commissionColumns + `
		FROM commissions
		WHERE id = $1
	`

	c, err := scanCommission(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return commission.Commission{}, commission.ErrCommissionNotFound
		}
		return commission.Commission{}, fmt.Errorf("failed to get commission: %w", err)
	}
	return c, nil
}

func (r *commissionRepository) Create(ctx context.Context, c commission.Commission) (commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commissions (id, policy_id, amount, type, status, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + commissionColumns + `
	`

	created, err := scanCommission(q.QueryRow(ctx, query,
		uuid.NewString(), c.PolicyID, c.Amount, c.Type, c.Status, c.Date,
	))
	if err != nil {
		return commission.Commission{}, fmt.Errorf("failed to create commission: %w", err)
	}
	return created, nil
}

func (r *commissionRepository) UpdateStatus(ctx context.Context, id string, status commission.CommissionStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE commissions
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update commission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return commission.ErrCommissionNotFound
	}
	return nil
}

func (r *commissionRepository) CreatePart(ctx context.Context, p commission.Part) (commission.Part, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commission_parts (id, commission_id, collaborator_id, rate, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, commission_id, collaborator_id, rate, amount, created_at
	`

	var created commission.Part
	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.CommissionID, p.CollaboratorID, p.Rate, p.Amount,
	).Scan(
		&created.ID, &created.CommissionID, &created.CollaboratorID,
		&created.Rate, &created.Amount, &created.CreatedAt,
	)
	if err != nil {
		return commission.Part{}, fmt.Errorf("failed to create commission part: %w", err)
	}
	return created, nil
}

func (r *commissionRepository) GetParts(ctx context.Context, commissionID string) ([]commission.Part, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, commission_id, collaborator_id, rate, amount, created_at
		FROM commission_parts
		WHERE commission_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, commissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get commission parts: %w", err)
	}
	defer rows.Close()

	var parts []commission.Part
	for rows.Next() {
		var p commission.Part
		if err := rows.Scan(&p.ID, &p.CommissionID, &p.CollaboratorID, &p.Rate, &p.Amount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan commission part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}
