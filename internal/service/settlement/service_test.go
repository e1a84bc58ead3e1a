package settlement

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/commission"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/settlement"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

const (
	agentOneID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	agentTwoID = "550e8400-e29b-41d4-a716-446655440000"
)

// ===== FAKES =====

type fakeCommissionRepo struct {
	commissions   []commission.Commission
	parts         map[string][]commission.Part
	partsErr      error
	getPartsCalls int32
}

func (f *fakeCommissionRepo) List(ctx context.Context) ([]commission.Commission, error) {
	return f.commissions, nil
}

func (f *fakeCommissionRepo) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]commission.Commission, error) {
	var result []commission.Commission
	for _, c := range f.commissions {
		if !c.CreatedAt.Before(from) && !c.CreatedAt.After(to) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCommissionRepo) ListPaid(ctx context.Context) ([]commission.Commission, error) {
	var result []commission.Commission
	for _, c := range f.commissions {
		if c.Status == commission.StatusPaid {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCommissionRepo) GetByID(ctx context.Context, id string) (commission.Commission, error) {
	for _, c := range f.commissions {
		if c.ID == id {
			return c, nil
		}
	}
	return commission.Commission{}, commission.ErrCommissionNotFound
}

func (f *fakeCommissionRepo) Create(ctx context.Context, c commission.Commission) (commission.Commission, error) {
	f.commissions = append(f.commissions, c)
	return c, nil
}

func (f *fakeCommissionRepo) UpdateStatus(ctx context.Context, id string, status commission.CommissionStatus) error {
	return nil
}

func (f *fakeCommissionRepo) CreatePart(ctx context.Context, p commission.Part) (commission.Part, error) {
	if f.parts == nil {
		f.parts = make(map[string][]commission.Part)
	}
	f.parts[p.CommissionID] = append(f.parts[p.CommissionID], p)
	return p, nil
}

func (f *fakeCommissionRepo) GetParts(ctx context.Context, commissionID string) ([]commission.Part, error) {
	atomic.AddInt32(&f.getPartsCalls, 1)
	if f.partsErr != nil {
		return nil, f.partsErr
	}
	return f.parts[commissionID], nil
}

type fakeCollaboratorRepo struct {
	collaborators []collaborator.Collaborator
}

func (f *fakeCollaboratorRepo) List(ctx context.Context) ([]collaborator.Collaborator, error) {
	return f.collaborators, nil
}

func (f *fakeCollaboratorRepo) GetByID(ctx context.Context, id string) (collaborator.Collaborator, error) {
	for _, c := range f.collaborators {
		if c.ID == id {
			return c, nil
		}
	}
	return collaborator.Collaborator{}, collaborator.ErrCollaboratorNotFound
}

func (f *fakeCollaboratorRepo) GetByIDs(ctx context.Context, ids []string) ([]collaborator.Collaborator, error) {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	var result []collaborator.Collaborator
	for _, c := range f.collaborators {
		if idSet[c.ID] {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCollaboratorRepo) Create(ctx context.Context, c collaborator.Collaborator) (collaborator.Collaborator, error) {
	f.collaborators = append(f.collaborators, c)
	return c, nil
}

// ===== HELPERS =====

func midMonth(day int) time.Time {
	return time.Date(2024, time.March, day, 10, 0, 0, 0, time.UTC)
}

func testCollaborator(id string, reserveRate int64) collaborator.Collaborator {
	return collaborator.Collaborator{
		ID:          id,
		Name:        "Agent " + id,
		Status:      collaborator.StatusActive,
		ReserveRate: decimal.NewFromInt(reserveRate),
	}
}

func testCommission(id string, amount int64, createdAt time.Time) commission.Commission {
	return commission.Commission{
		ID:        id,
		PolicyID:  "pol-" + id,
		Amount:    decimal.NewFromInt(amount),
		Type:      commission.TypeAcquisition,
		Status:    commission.StatusDue,
		CreatedAt: createdAt,
	}
}

func testPart(commissionID, collaboratorID string, rate, amount int64) commission.Part {
	return commission.Part{
		ID:             commissionID + "-" + collaboratorID,
		CommissionID:   commissionID,
		CollaboratorID: collaboratorID,
		Rate:           decimal.NewFromInt(rate),
		Amount:         decimal.NewFromInt(amount),
	}
}

// ===== SETTLEMENT SERVICE TESTS =====

func TestGenerateStatements_ReserveRetention(t *testing.T) {
	// Two in-range commissions with agent splits of 1000 and 500 at a 10%
	// reserve: total 1500, reserve 150, net 1350.
	commissionRepo := &fakeCommissionRepo{
		commissions: []commission.Commission{
			testCommission("c1", 2000, midMonth(5)),
			testCommission("c2", 1000, midMonth(10)),
		},
		parts: map[string][]commission.Part{
			"c1": {testPart("c1", agentOneID, 50, 1000)},
			"c2": {testPart("c2", agentOneID, 50, 500)},
		},
	}
	collaboratorRepo := &fakeCollaboratorRepo{
		collaborators: []collaborator.Collaborator{testCollaborator(agentOneID, 10)},
	}

	svc := NewSettlementService(commissionRepo, collaboratorRepo)
	statements, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate:       "2024-03-01",
		EndDate:         "2024-03-31",
		CollaboratorIDs: []string{agentOneID},
	})
	require.NoError(t, err)
	require.Len(t, statements, 1)

	st := statements[0]
	assert.Equal(t, 2, st.CommissionsCount)
	assert.True(t, st.TotalCommissions.Equal(decimal.NewFromInt(3000)), "total commissions = %s", st.TotalCommissions)
	assert.True(t, st.TotalAgentAmount.Equal(decimal.NewFromInt(1500)), "agent amount = %s", st.TotalAgentAmount)
	assert.True(t, st.ReserveAmount.Equal(decimal.NewFromInt(150)), "reserve = %s", st.ReserveAmount)
	assert.True(t, st.NetAmount.Equal(decimal.NewFromInt(1350)), "net = %s", st.NetAmount)

	// The retention identity holds exactly.
	assert.True(t, st.ReserveAmount.Add(st.NetAmount).Equal(st.TotalAgentAmount))
}

func TestGenerateStatements_EmptyRangeIsNotAnError(t *testing.T) {
	commissionRepo := &fakeCommissionRepo{
		commissions: []commission.Commission{testCommission("c1", 2000, midMonth(5))},
		parts:       map[string][]commission.Part{"c1": {testPart("c1", agentOneID, 50, 1000)}},
	}
	collaboratorRepo := &fakeCollaboratorRepo{
		collaborators: []collaborator.Collaborator{testCollaborator(agentOneID, 10)},
	}

	svc := NewSettlementService(commissionRepo, collaboratorRepo)
	statements, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate:       "2023-01-01",
		EndDate:         "2023-01-31",
		CollaboratorIDs: []string{agentOneID},
	})
	require.NoError(t, err)
	assert.Empty(t, statements)
}

func TestGenerateStatements_RangeIsInclusiveOfBothDays(t *testing.T) {
	commissionRepo := &fakeCommissionRepo{
		commissions: []commission.Commission{
			testCommission("early", 100, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			testCommission("late", 100, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)),
			testCommission("outside", 100, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		},
		parts: map[string][]commission.Part{
			"early":   {testPart("early", agentOneID, 100, 100)},
			"late":    {testPart("late", agentOneID, 100, 100)},
			"outside": {testPart("outside", agentOneID, 100, 100)},
		},
	}
	collaboratorRepo := &fakeCollaboratorRepo{
		collaborators: []collaborator.Collaborator{testCollaborator(agentOneID, 0)},
	}

	svc := NewSettlementService(commissionRepo, collaboratorRepo)
	statements, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate:       "2024-03-01",
		EndDate:         "2024-03-31",
		CollaboratorIDs: []string{agentOneID},
	})
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, 2, statements[0].CommissionsCount)
}

func TestGenerateStatements_OmitsCollaboratorsWithoutCommissions(t *testing.T) {
	commissionRepo := &fakeCommissionRepo{
		commissions: []commission.Commission{testCommission("c1", 2000, midMonth(5))},
		parts:       map[string][]commission.Part{"c1": {testPart("c1", agentOneID, 50, 1000)}},
	}
	collaboratorRepo := &fakeCollaboratorRepo{
		collaborators: []collaborator.Collaborator{
			testCollaborator(agentOneID, 10),
			testCollaborator(agentTwoID, 20),
		},
	}

	svc := NewSettlementService(commissionRepo, collaboratorRepo)
	statements, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate:       "2024-03-01",
		EndDate:         "2024-03-31",
		CollaboratorIDs: []string{agentOneID, agentTwoID},
	})
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, agentOneID, statements[0].Collaborator.ID)
}

func TestGenerateStatements_FetchesPartsOncePerCommission(t *testing.T) {
	commissionRepo := &fakeCommissionRepo{
		commissions: []commission.Commission{
			testCommission("c1", 1000, midMonth(5)),
			testCommission("c2", 1000, midMonth(6)),
			testCommission("c3", 1000, midMonth(7)),
		},
		parts: map[string][]commission.Part{
			"c1": {testPart("c1", agentOneID, 40, 400), testPart("c1", agentTwoID, 40, 400)},
			"c2": {testPart("c2", agentOneID, 40, 400)},
			"c3": {testPart("c3", agentTwoID, 40, 400)},
		},
	}
	collaboratorRepo := &fakeCollaboratorRepo{
		collaborators: []collaborator.Collaborator{
			testCollaborator(agentOneID, 0),
			testCollaborator(agentTwoID, 0),
		},
	}

	svc := NewSettlementService(commissionRepo, collaboratorRepo)
	_, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate:       "2024-03-01",
		EndDate:         "2024-03-31",
		CollaboratorIDs: []string{agentOneID, agentTwoID},
	})
	require.NoError(t, err)

	// One lookup per commission, not per (commission, collaborator) pair.
	assert.Equal(t, int32(3), atomic.LoadInt32(&commissionRepo.getPartsCalls))
}

func TestGenerateStatements_PartFetchFailureAbortsBatch(t *testing.T) {
	upstreamErr := errors.New("ledger timeout")
	commissionRepo := &fakeCommissionRepo{
		commissions: []commission.Commission{testCommission("c1", 2000, midMonth(5))},
		partsErr:    upstreamErr,
	}
	collaboratorRepo := &fakeCollaboratorRepo{
		collaborators: []collaborator.Collaborator{testCollaborator(agentOneID, 10)},
	}

	svc := NewSettlementService(commissionRepo, collaboratorRepo)
	statements, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate:       "2024-03-01",
		EndDate:         "2024-03-31",
		CollaboratorIDs: []string{agentOneID},
	})
	require.ErrorIs(t, err, upstreamErr)
	assert.Nil(t, statements)
}

func TestGenerateStatements_RejectsInvalidRange(t *testing.T) {
	svc := NewSettlementService(&fakeCommissionRepo{}, &fakeCollaboratorRepo{})

	_, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate:       "2024-03-31",
		EndDate:         "2024-03-01",
		CollaboratorIDs: []string{agentOneID},
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_date")
}

func TestGenerateStatements_RejectsMalformedCollaboratorIDs(t *testing.T) {
	svc := NewSettlementService(&fakeCommissionRepo{}, &fakeCollaboratorRepo{})

	_, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate:       "2024-03-01",
		EndDate:         "2024-03-31",
		CollaboratorIDs: []string{"not-a-uuid"},
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "collaborator_ids")
}

func TestGenerateStatements_RejectsEmptySelection(t *testing.T) {
	svc := NewSettlementService(&fakeCommissionRepo{}, &fakeCollaboratorRepo{})

	_, err := svc.GenerateStatements(context.Background(), settlement.GenerateRequest{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "collaborator_ids")
}
