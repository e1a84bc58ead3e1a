package commission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/commission"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/policy"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/database"
)

var oneHundred = decimal.NewFromInt(100)

type CommissionServiceImpl struct {
	db               database.Transactor
	commissionRepo   commission.CommissionRepository
	policyRepo       policy.PolicyRepository
	collaboratorRepo collaborator.CollaboratorRepository
}

func NewCommissionService(
	db database.Transactor,
	commissionRepo commission.CommissionRepository,
	policyRepo policy.PolicyRepository,
	collaboratorRepo collaborator.CollaboratorRepository,
) commission.CommissionService {
	return &CommissionServiceImpl{
		db:               db,
		commissionRepo:   commissionRepo,
		policyRepo:       policyRepo,
		collaboratorRepo: collaboratorRepo,
	}
}

func (s *CommissionServiceImpl) List(ctx context.Context) ([]commission.CommissionResponse, error) {
	commissions, err := s.commissionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]commission.CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		result = append(result, mapToResponse(c))
	}
	return result, nil
}

func (s *CommissionServiceImpl) Get(ctx context.Context, id string) (commission.CommissionResponse, error) {
	c, err := s.commissionRepo.GetByID(ctx, id)
	if err != nil {
		return commission.CommissionResponse{}, err
	}
	return mapToResponse(c), nil
}

func (s *CommissionServiceImpl) Create(ctx context.Context, req commission.CreateCommissionRequest) (commission.CommissionResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.CommissionResponse{}, err
	}

	if _, err := s.policyRepo.GetByID(ctx, req.PolicyID); err != nil {
		return commission.CommissionResponse{}, err
	}

	c := commission.Commission{
		PolicyID: req.PolicyID,
		Amount:   req.Amount,
		Type:     commission.CommissionType(req.Type),
		Status:   commission.StatusPending,
	}
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err == nil {
			c.Date = &parsed
		}
	}

	created, err := s.commissionRepo.Create(ctx, c)
	if err != nil {
		return commission.CommissionResponse{}, fmt.Errorf("failed to create commission: %w", err)
	}
	return mapToResponse(created), nil
}

func (s *CommissionServiceImpl) UpdateStatus(ctx context.Context, req commission.UpdateCommissionStatusRequest) (commission.CommissionResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.CommissionResponse{}, err
	}

	c, err := s.commissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return commission.CommissionResponse{}, err
	}

	target := commission.CommissionStatus(req.Status)
	if !commission.CanTransition(c.Status, target) {
		return commission.CommissionResponse{}, fmt.Errorf("%w: %s -> %s", commission.ErrInvalidTransition, c.Status, target)
	}

	if err := s.commissionRepo.UpdateStatus(ctx, c.ID, target); err != nil {
		return commission.CommissionResponse{}, fmt.Errorf("failed to update commission status: %w", err)
	}

	c.Status = target
	return mapToResponse(c), nil
}

// AddPart registers a collaborator split. The part amount is computed here
// and stored. Rates summing above 100% are tolerated: the write goes
// through, the brokerage remainder is floored at zero and the anomaly is
// logged and flagged on the response for data-quality review.
func (s *CommissionServiceImpl) AddPart(ctx context.Context, req commission.AddPartRequest) (commission.PartResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.PartResponse{}, err
	}

	c, err := s.commissionRepo.GetByID(ctx, req.CommissionID)
	if err != nil {
		return commission.PartResponse{}, err
	}
	if _, err := s.collaboratorRepo.GetByID(ctx, req.CollaboratorID); err != nil {
		return commission.PartResponse{}, err
	}

	part := commission.Part{
		CommissionID:   c.ID,
		CollaboratorID: req.CollaboratorID,
		Rate:           req.Rate,
		Amount:         c.Amount.Mul(req.Rate).Div(oneHundred),
	}

	// Write and recount in one transaction so the anomaly check sees the
	// new part together with a consistent view of its siblings.
	var created commission.Part
	var parts []commission.Part
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.commissionRepo.CreatePart(txCtx, part)
		if err != nil {
			return fmt.Errorf("failed to create commission part: %w", err)
		}
		parts, err = s.commissionRepo.GetParts(txCtx, c.ID)
		if err != nil {
			return fmt.Errorf("failed to get parts for commission %s: %w", c.ID, err)
		}
		return nil
	})
	if err != nil {
		return commission.PartResponse{}, err
	}

	totalRate := decimal.Zero
	splitAmount := decimal.Zero
	for _, p := range parts {
		totalRate = totalRate.Add(p.Rate)
		splitAmount = splitAmount.Add(p.Amount)
	}

	brokerageShare := c.Amount.Sub(splitAmount)
	anomaly := totalRate.GreaterThan(oneHundred)
	if brokerageShare.IsNegative() {
		brokerageShare = decimal.Zero
	}
	if anomaly {
		slog.Warn("commission split rates exceed 100%",
			"commission_id", c.ID,
			"total_rate", totalRate.String(),
		)
	}

	return commission.PartResponse{
		ID:             created.ID,
		CommissionID:   created.CommissionID,
		CollaboratorID: created.CollaboratorID,
		Rate:           created.Rate,
		Amount:         created.Amount,
		TotalRate:      totalRate,
		BrokerageShare: brokerageShare,
		RateAnomaly:    anomaly,
	}, nil
}

func (s *CommissionServiceImpl) GetParts(ctx context.Context, commissionID string) ([]commission.Part, error) {
	if _, err := s.commissionRepo.GetByID(ctx, commissionID); err != nil {
		return nil, err
	}
	return s.commissionRepo.GetParts(ctx, commissionID)
}

func mapToResponse(c commission.Commission) commission.CommissionResponse {
	var dateStr *string
	if c.Date != nil {
		str := c.Date.Format("2006-01-02")
		dateStr = &str
	}

	return commission.CommissionResponse{
		ID:        c.ID,
		PolicyID:  c.PolicyID,
		Amount:    c.Amount,
		Type:      string(c.Type),
		Status:    string(c.Status),
		Date:      dateStr,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
