package collaborator

import (
	"context"
	"fmt"

	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
)

type CollaboratorServiceImpl struct {
	collaboratorRepo collaborator.CollaboratorRepository
}

func NewCollaboratorService(collaboratorRepo collaborator.CollaboratorRepository) collaborator.CollaboratorService {
	return &CollaboratorServiceImpl{collaboratorRepo: collaboratorRepo}
}

func (s *CollaboratorServiceImpl) List(ctx context.Context) ([]collaborator.CollaboratorResponse, error) {
	collaborators, err := s.collaboratorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]collaborator.CollaboratorResponse, 0, len(collaborators))
	for _, c := range collaborators {
		result = append(result, mapToResponse(c))
	}
	return result, nil
}

func (s *CollaboratorServiceImpl) Get(ctx context.Context, id string) (collaborator.CollaboratorResponse, error) {
	c, err := s.collaboratorRepo.GetByID(ctx, id)
	if err != nil {
		return collaborator.CollaboratorResponse{}, err
	}
	return mapToResponse(c), nil
}

func (s *CollaboratorServiceImpl) Create(ctx context.Context, req collaborator.CreateCollaboratorRequest) (collaborator.CollaboratorResponse, error) {
	if err := req.Validate(); err != nil {
		return collaborator.CollaboratorResponse{}, err
	}

	contractType := collaborator.ContractCommission
	if req.ContractType != "" {
		contractType = collaborator.ContractType(req.ContractType)
	}

	c := collaborator.Collaborator{
		Name:                     req.Name,
		Profession:               req.Profession,
		Status:                   collaborator.StatusActive,
		FixedSalary:              req.FixedSalary,
		CommissionRateLCA:        req.CommissionRateLCA,
		CommissionRateVIE:        req.CommissionRateVIE,
		ManagerCommissionRateLCA: req.ManagerCommissionRateLCA,
		ManagerCommissionRateVIE: req.ManagerCommissionRateVIE,
		BonusRate:                req.BonusRate,
		ReserveRate:              req.ReserveRate,
		ContractType:             contractType,
		Canton:                   req.Canton,
		CivilStatus:              req.CivilStatus,
		ManagerID:                req.ManagerID,
	}

	created, err := s.collaboratorRepo.Create(ctx, c)
	if err != nil {
		return collaborator.CollaboratorResponse{}, fmt.Errorf("failed to create collaborator: %w", err)
	}
	return mapToResponse(created), nil
}

func mapToResponse(c collaborator.Collaborator) collaborator.CollaboratorResponse {
	return collaborator.CollaboratorResponse{
		ID:           c.ID,
		Name:         c.Name,
		Profession:   c.Profession,
		Status:       string(c.Status),
		FixedSalary:  c.FixedSalary,
		ReserveRate:  c.ReserveRate,
		ContractType: string(c.ContractType),
		Canton:       c.Canton,
		CivilStatus:  c.CivilStatus,
		ManagerID:    c.ManagerID,
	}
}
