package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/commission"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/settlement"
	"golang.org/x/sync/errgroup"
)

// partFetchConcurrency bounds the parallel part lookups so a wide date range
// does not flood the ledger backend.
const partFetchConcurrency = 8

var oneHundred = decimal.NewFromInt(100)

type SettlementServiceImpl struct {
	commissionRepo   commission.CommissionRepository
	collaboratorRepo collaborator.CollaboratorRepository
}

func NewSettlementService(
	commissionRepo commission.CommissionRepository,
	collaboratorRepo collaborator.CollaboratorRepository,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		commissionRepo:   commissionRepo,
		collaboratorRepo: collaboratorRepo,
	}
}

// GenerateStatements builds one statement per requested collaborator over
// the inclusive date range. Collaborators without any matching commission
// are omitted; an empty batch is a valid empty result, not an error. Any
// part-fetch failure aborts the whole generation, there is no partial
// per-collaborator output.
func (s *SettlementServiceImpl) GenerateStatements(ctx context.Context, req settlement.GenerateRequest) ([]settlement.Statement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Validate() already guarantees parseable dates.
	startDay, _ := time.Parse("2006-01-02", req.StartDate)
	endDay, _ := time.Parse("2006-01-02", req.EndDate)
	from := startDay
	to := endDay.Add(24*time.Hour - time.Millisecond)

	collaborators, err := s.collaboratorRepo.GetByIDs(ctx, req.CollaboratorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get collaborators: %w", err)
	}

	commissions, err := s.commissionRepo.ListByCreatedRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	if len(collaborators) == 0 || len(commissions) == 0 {
		return []settlement.Statement{}, nil
	}

	partsByCommission, err := s.fetchParts(ctx, commissions)
	if err != nil {
		return nil, err
	}

	statements := make([]settlement.Statement, 0, len(collaborators))
	for _, col := range collaborators {
		st := buildStatement(col, commissions, partsByCommission)
		if st.CommissionsCount == 0 {
			continue
		}
		statements = append(statements, st)
	}

	return statements, nil
}

// fetchParts retrieves the splits of every commission through a bounded
// worker pool, one lookup per commission regardless of how many
// collaborators share the period.
func (s *SettlementServiceImpl) fetchParts(ctx context.Context, commissions []commission.Commission) (map[string][]commission.Part, error) {
	results := make([][]commission.Part, len(commissions))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(partFetchConcurrency)
	for i, c := range commissions {
		g.Go(func() error {
			parts, err := s.commissionRepo.GetParts(gCtx, c.ID)
			if err != nil {
				return fmt.Errorf("failed to get parts for commission %s: %w", c.ID, err)
			}
			results[i] = parts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	partsByCommission := make(map[string][]commission.Part, len(commissions))
	for i, c := range commissions {
		partsByCommission[c.ID] = results[i]
	}
	return partsByCommission, nil
}

func buildStatement(col collaborator.Collaborator, commissions []commission.Commission, partsByCommission map[string][]commission.Part) settlement.Statement {
	st := settlement.Statement{
		Collaborator: col,
		ReserveRate:  col.ReserveRate,
	}

	for _, c := range commissions {
		var own []commission.Part
		for _, p := range partsByCommission[c.ID] {
			if p.CollaboratorID == col.ID {
				own = append(own, p)
			}
		}
		if len(own) == 0 {
			continue
		}

		st.Lines = append(st.Lines, settlement.Line{Commission: c, Parts: own})
		st.CommissionsCount++
		st.TotalCommissions = st.TotalCommissions.Add(c.Amount)
		for _, p := range own {
			st.TotalAgentAmount = st.TotalAgentAmount.Add(p.Amount)
		}
	}

	st.ReserveAmount = st.TotalAgentAmount.Mul(col.ReserveRate).Div(oneHundred)
	st.NetAmount = st.TotalAgentAmount.Sub(st.ReserveAmount)
	return st
}
