package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/policy"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

const policyColumns = `id, client_id, product_type, products_data, premium_monthly, premium_yearly, status, start_date, created_at`

func scanPolicy(row pgx.Row) (policy.Policy, error) {
	var p policy.Policy
	var productsData []byte
	err := row.Scan(
		&p.ID, &p.ClientID, &p.ProductType, &productsData,
		&p.PremiumMonthly, &p.PremiumYearly, &p.Status, &p.StartDate, &p.CreatedAt,
	)
	if err != nil {
		return policy.Policy{}, err
	}
	if len(productsData) > 0 {
		if err := json.Unmarshal(productsData, &p.ProductsData); err != nil {
			return policy.Policy{}, fmt.Errorf("failed to decode products_data for policy %s: %w", p.ID, err)
		}
	}
	return p, nil
}

func (r *policyRepository) list(ctx context.Context, query string, args ...interface{}) ([]policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	defer rows.Close()

	var policies []policy.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy: %w", err)
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

func (r *policyRepository) List(ctx context.Context) ([]policy.Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM policies
		ORDER BY created_at
	`
	return r.list(ctx, query)
}

func (r *policyRepository) ListActive(ctx context.Context) ([]policy.Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM policies
		WHERE status = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, policy.PolicyStatusActive)
}

func (r *policyRepository) GetByID(ctx context.Context, id string) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + policyColumns + `
		FROM policies
		WHERE id = $1
	`

	p, err := scanPolicy(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return policy.Policy{}, policy.ErrPolicyNotFound
		}
		return policy.Policy{}, fmt.Errorf("failed to get policy: %w", err)
	}
	return p, nil
}

func (r *policyRepository) Create(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	productsData, err := json.Marshal(p.ProductsData)
	if err != nil {
		return policy.Policy{}, fmt.Errorf("failed to encode products_data: %w", err)
	}

	query := `
		INSERT INTO policies (id, client_id, product_type, products_data, premium_monthly, premium_yearly, status, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + policyColumns + `
	`

	created, err := scanPolicy(q.QueryRow(ctx, query,
		uuid.NewString(), p.ClientID, p.ProductType, productsData,
		p.PremiumMonthly, p.PremiumYearly, p.Status, p.StartDate,
	))
	if err != nil {
		return policy.Policy{}, fmt.Errorf("failed to create policy: %w", err)
	}
	return created, nil
}

func (r *policyRepository) UpdateStatus(ctx context.Context, id string, status policy.PolicyStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE policies
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update policy status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return policy.ErrPolicyNotFound
	}
	return nil
}
