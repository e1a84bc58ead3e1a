package commission

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/commission"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/policy"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

const (
	testPolicyID = "3f2a1d84-9c41-4b6e-8f0d-2a7c5e913b60"
	agentOneID   = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	agentTwoID   = "550e8400-e29b-41d4-a716-446655440000"
	unknownID    = "00000000-0000-4000-8000-000000000000"
)

// ===== FAKES =====

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeCommissionRepo struct {
	commissions []commission.Commission
	parts       map[string][]commission.Part
	nextID      int
}

func (f *fakeCommissionRepo) List(ctx context.Context) ([]commission.Commission, error) {
	return f.commissions, nil
}

func (f *fakeCommissionRepo) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]commission.Commission, error) {
	return f.commissions, nil
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
	f.nextID++
	c.ID = "commission-" + strconv.Itoa(f.nextID)
	c.CreatedAt = time.Now()
	f.commissions = append(f.commissions, c)
	return c, nil
}

func (f *fakeCommissionRepo) UpdateStatus(ctx context.Context, id string, status commission.CommissionStatus) error {
	for i := range f.commissions {
		if f.commissions[i].ID == id {
			f.commissions[i].Status = status
			return nil
		}
	}
	return commission.ErrCommissionNotFound
}

func (f *fakeCommissionRepo) CreatePart(ctx context.Context, p commission.Part) (commission.Part, error) {
	f.nextID++
	p.ID = "part-" + strconv.Itoa(f.nextID)
	if f.parts == nil {
		f.parts = make(map[string][]commission.Part)
	}
	f.parts[p.CommissionID] = append(f.parts[p.CommissionID], p)
	return p, nil
}

func (f *fakeCommissionRepo) GetParts(ctx context.Context, commissionID string) ([]commission.Part, error) {
	return f.parts[commissionID], nil
}

type fakePolicyRepo struct {
	policies []policy.Policy
}

func (f *fakePolicyRepo) List(ctx context.Context) ([]policy.Policy, error) {
	return f.policies, nil
}

func (f *fakePolicyRepo) ListActive(ctx context.Context) ([]policy.Policy, error) {
	return f.policies, nil
}

func (f *fakePolicyRepo) GetByID(ctx context.Context, id string) (policy.Policy, error) {
	for _, p := range f.policies {
		if p.ID == id {
			return p, nil
		}
	}
	return policy.Policy{}, policy.ErrPolicyNotFound
}

func (f *fakePolicyRepo) Create(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	f.policies = append(f.policies, p)
	return p, nil
}

func (f *fakePolicyRepo) UpdateStatus(ctx context.Context, id string, status policy.PolicyStatus) error {
	return nil
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
	return f.collaborators, nil
}

func (f *fakeCollaboratorRepo) Create(ctx context.Context, c collaborator.Collaborator) (collaborator.Collaborator, error) {
	f.collaborators = append(f.collaborators, c)
	return c, nil
}

// ===== HELPERS =====

func newTestService(commissionRepo *fakeCommissionRepo) (commission.CommissionService, *fakeTransactor) {
	policyRepo := &fakePolicyRepo{policies: []policy.Policy{
		{ID: testPolicyID, ClientID: "client-1", ProductType: "LCA", Status: policy.PolicyStatusActive},
	}}
	collaboratorRepo := &fakeCollaboratorRepo{collaborators: []collaborator.Collaborator{
		{ID: agentOneID, Name: "Agent One", Status: collaborator.StatusActive},
		{ID: agentTwoID, Name: "Agent Two", Status: collaborator.StatusActive},
	}}
	tx := &fakeTransactor{}
	return NewCommissionService(tx, commissionRepo, policyRepo, collaboratorRepo), tx
}

func seededCommission(amount int64, status commission.CommissionStatus) *fakeCommissionRepo {
	return &fakeCommissionRepo{commissions: []commission.Commission{{
		ID:        "c1",
		PolicyID:  testPolicyID,
		Amount:    decimal.NewFromInt(amount),
		Type:      commission.TypeAcquisition,
		Status:    status,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}}}
}

// ===== COMMISSION SERVICE TESTS =====

func TestCreate_StartsPending(t *testing.T) {
	svc, _ := newTestService(&fakeCommissionRepo{})

	created, err := svc.Create(context.Background(), commission.CreateCommissionRequest{
		PolicyID: testPolicyID,
		Amount:   decimal.NewFromInt(2000),
		Type:     "acquisition",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, testPolicyID, created.PolicyID)
}

func TestCreate_UnknownPolicyRejected(t *testing.T) {
	svc, _ := newTestService(&fakeCommissionRepo{})

	_, err := svc.Create(context.Background(), commission.CreateCommissionRequest{
		PolicyID: unknownID,
		Amount:   decimal.NewFromInt(2000),
		Type:     "acquisition",
	})
	assert.ErrorIs(t, err, policy.ErrPolicyNotFound)
}

func TestCreate_MalformedPolicyIDRejected(t *testing.T) {
	svc, _ := newTestService(&fakeCommissionRepo{})

	_, err := svc.Create(context.Background(), commission.CreateCommissionRequest{
		PolicyID: "not-a-uuid",
		Amount:   decimal.NewFromInt(2000),
		Type:     "acquisition",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "policy_id")
}

func TestCreate_NegativeAmountOnlyForDecommission(t *testing.T) {
	svc, _ := newTestService(&fakeCommissionRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, commission.CreateCommissionRequest{
		PolicyID: testPolicyID,
		Amount:   decimal.NewFromInt(-500),
		Type:     "acquisition",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "amount")

	created, err := svc.Create(ctx, commission.CreateCommissionRequest{
		PolicyID: testPolicyID,
		Amount:   decimal.NewFromInt(-500),
		Type:     "decommission",
	})
	require.NoError(t, err)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(-500)))
}

func TestUpdateStatus_ForwardTransitions(t *testing.T) {
	tests := []struct {
		from commission.CommissionStatus
		to   string
	}{
		{commission.StatusPending, "due"},
		{commission.StatusPending, "paid"},
		{commission.StatusDue, "paid"},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+tt.to, func(t *testing.T) {
			repo := seededCommission(1000, tt.from)
			svc, _ := newTestService(repo)

			updated, err := svc.UpdateStatus(context.Background(), commission.UpdateCommissionStatusRequest{
				ID:     "c1",
				Status: tt.to,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
			assert.Equal(t, commission.CommissionStatus(tt.to), repo.commissions[0].Status)
		})
	}
}

func TestUpdateStatus_BackwardAndSameRejected(t *testing.T) {
	tests := []struct {
		from commission.CommissionStatus
		to   string
	}{
		{commission.StatusDue, "pending"},
		{commission.StatusPaid, "due"},
		{commission.StatusPaid, "pending"},
		{commission.StatusDue, "due"},
		{commission.StatusPaid, "paid"},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+tt.to, func(t *testing.T) {
			repo := seededCommission(1000, tt.from)
			svc, _ := newTestService(repo)

			_, err := svc.UpdateStatus(context.Background(), commission.UpdateCommissionStatusRequest{
				ID:     "c1",
				Status: tt.to,
			})
			require.ErrorIs(t, err, commission.ErrInvalidTransition)
			// The stored status must not move.
			assert.Equal(t, tt.from, repo.commissions[0].Status)
		})
	}
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	svc, _ := newTestService(seededCommission(1000, commission.StatusPending))

	_, err := svc.UpdateStatus(context.Background(), commission.UpdateCommissionStatusRequest{
		ID:     "c1",
		Status: "archived",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "status")
}

func TestAddPart_ComputesAndStoresAmount(t *testing.T) {
	repo := seededCommission(2000, commission.StatusDue)
	svc, _ := newTestService(repo)

	part, err := svc.AddPart(context.Background(), commission.AddPartRequest{
		CommissionID:   "c1",
		CollaboratorID: agentOneID,
		Rate:           decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.True(t, part.Amount.Equal(decimal.NewFromInt(1000)), "amount = %s", part.Amount)
	assert.True(t, part.TotalRate.Equal(decimal.NewFromInt(50)))
	assert.True(t, part.BrokerageShare.Equal(decimal.NewFromInt(1000)), "brokerage share = %s", part.BrokerageShare)
	assert.False(t, part.RateAnomaly)

	// The stored part carries the precomputed amount.
	stored := repo.parts["c1"]
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Amount.Equal(decimal.NewFromInt(1000)))
}

func TestAddPart_WriteAndRecountShareTransaction(t *testing.T) {
	repo := seededCommission(2000, commission.StatusDue)
	svc, tx := newTestService(repo)

	_, err := svc.AddPart(context.Background(), commission.AddPartRequest{
		CommissionID:   "c1",
		CollaboratorID: agentOneID,
		Rate:           decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	// One transaction covers both the insert and the recount.
	assert.Equal(t, 1, tx.calls)
	assert.Len(t, repo.parts["c1"], 1)
}

func TestAddPart_RejectedRequestOpensNoTransaction(t *testing.T) {
	svc, tx := newTestService(seededCommission(2000, commission.StatusDue))

	_, err := svc.AddPart(context.Background(), commission.AddPartRequest{
		CommissionID:   "c1",
		CollaboratorID: agentOneID,
		Rate:           decimal.NewFromInt(101),
	})
	require.Error(t, err)
	assert.Equal(t, 0, tx.calls)
}

func TestAddPart_OverOneHundredPercentToleratedAndFlagged(t *testing.T) {
	repo := seededCommission(2000, commission.StatusDue)
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, err := svc.AddPart(ctx, commission.AddPartRequest{
		CommissionID:   "c1",
		CollaboratorID: agentOneID,
		Rate:           decimal.NewFromInt(70),
	})
	require.NoError(t, err)

	second, err := svc.AddPart(ctx, commission.AddPartRequest{
		CommissionID:   "c1",
		CollaboratorID: agentTwoID,
		Rate:           decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	assert.True(t, second.RateAnomaly)
	assert.True(t, second.TotalRate.Equal(decimal.NewFromInt(130)))
	// The remainder would be negative (2000 - 1400 - 1200); it is floored.
	assert.True(t, second.BrokerageShare.IsZero(), "brokerage share = %s", second.BrokerageShare)
	// Both writes landed despite the anomaly.
	assert.Len(t, repo.parts["c1"], 2)
}

func TestAddPart_RateBoundsEnforcedPerPart(t *testing.T) {
	svc, _ := newTestService(seededCommission(2000, commission.StatusDue))

	for _, rate := range []int64{-1, 101} {
		_, err := svc.AddPart(context.Background(), commission.AddPartRequest{
			CommissionID:   "c1",
			CollaboratorID: agentOneID,
			Rate:           decimal.NewFromInt(rate),
		})
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Contains(t, validationErrs.ToMap(), "rate")
	}
}

func TestAddPart_MalformedCollaboratorIDRejected(t *testing.T) {
	svc, _ := newTestService(seededCommission(2000, commission.StatusDue))

	_, err := svc.AddPart(context.Background(), commission.AddPartRequest{
		CommissionID:   "c1",
		CollaboratorID: "not-a-uuid",
		Rate:           decimal.NewFromInt(50),
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "collaborator_id")
}

func TestAddPart_UnknownCommissionOrCollaborator(t *testing.T) {
	svc, _ := newTestService(seededCommission(2000, commission.StatusDue))
	ctx := context.Background()

	_, err := svc.AddPart(ctx, commission.AddPartRequest{
		CommissionID:   "ghost",
		CollaboratorID: agentOneID,
		Rate:           decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, commission.ErrCommissionNotFound)

	_, err = svc.AddPart(ctx, commission.AddPartRequest{
		CommissionID:   "c1",
		CollaboratorID: unknownID,
		Rate:           decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, collaborator.ErrCollaboratorNotFound)
}

func TestGetParts_UnknownCommission(t *testing.T) {
	svc, _ := newTestService(&fakeCommissionRepo{})

	_, err := svc.GetParts(context.Background(), "ghost")
	assert.ErrorIs(t, err, commission.ErrCommissionNotFound)
}
