package policy

import (
	"context"
	"fmt"
	"time"

	"github.com/swisscourtage/brokerage-backend-go/internal/domain/policy"
)

type PolicyServiceImpl struct {
	policyRepo policy.PolicyRepository
}

func NewPolicyService(policyRepo policy.PolicyRepository) policy.PolicyService {
	return &PolicyServiceImpl{policyRepo: policyRepo}
}

func (s *PolicyServiceImpl) List(ctx context.Context) ([]policy.PolicyResponse, error) {
	policies, err := s.policyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]policy.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		result = append(result, mapToResponse(p))
	}
	return result, nil
}

func (s *PolicyServiceImpl) Get(ctx context.Context, id string) (policy.PolicyResponse, error) {
	p, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		return policy.PolicyResponse{}, err
	}
	return mapToResponse(p), nil
}

func (s *PolicyServiceImpl) Create(ctx context.Context, req policy.CreatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	status := policy.PolicyStatusPending
	if req.Status != "" {
		status = policy.PolicyStatus(req.Status)
	}

	p := policy.Policy{
		ClientID:       req.ClientID,
		ProductType:    req.ProductType,
		ProductsData:   req.ProductsData,
		PremiumMonthly: req.PremiumMonthly,
		PremiumYearly:  req.PremiumYearly,
		Status:         status,
	}
	if req.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err == nil {
			p.StartDate = &parsed
		}
	}

	created, err := s.policyRepo.Create(ctx, p)
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to create policy: %w", err)
	}
	return mapToResponse(created), nil
}

func (s *PolicyServiceImpl) UpdateStatus(ctx context.Context, req policy.UpdatePolicyStatusRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	p, err := s.policyRepo.GetByID(ctx, req.ID)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	if err := s.policyRepo.UpdateStatus(ctx, p.ID, policy.PolicyStatus(req.Status)); err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to update policy status: %w", err)
	}

	p.Status = policy.PolicyStatus(req.Status)
	return mapToResponse(p), nil
}

func mapToResponse(p policy.Policy) policy.PolicyResponse {
	var startDateStr *string
	if p.StartDate != nil {
		str := p.StartDate.Format("2006-01-02")
		startDateStr = &str
	}

	return policy.PolicyResponse{
		ID:             p.ID,
		ClientID:       p.ClientID,
		ProductType:    p.ProductType,
		Category:       string(policy.Categorize(p)),
		ProductsData:   p.ProductsData,
		PremiumMonthly: p.PremiumMonthly,
		PremiumYearly:  p.PremiumYearly,
		Status:         string(p.Status),
		StartDate:      startDateStr,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}
