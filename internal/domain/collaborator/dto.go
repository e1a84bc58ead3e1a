package collaborator

import (
	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/fixtures"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

type CreateCollaboratorRequest struct {
	Name                     string          `json:"name"`
	Profession               string          `json:"profession"`
	FixedSalary              decimal.Decimal `json:"fixed_salary"`
	CommissionRateLCA        decimal.Decimal `json:"commission_rate_lca"`
	CommissionRateVIE        decimal.Decimal `json:"commission_rate_vie"`
	ManagerCommissionRateLCA decimal.Decimal `json:"manager_commission_rate_lca"`
	ManagerCommissionRateVIE decimal.Decimal `json:"manager_commission_rate_vie"`
	BonusRate                decimal.Decimal `json:"bonus_rate"`
	ReserveRate              decimal.Decimal `json:"reserve_rate"`
	ContractType             string          `json:"contract_type"`
	Canton                   string          `json:"canton"`
	CivilStatus              string          `json:"civil_status"`
	ManagerID                *string         `json:"manager_id,omitempty"`
}

func (r *CreateCollaboratorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.FixedSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_salary", Message: "must be non-negative"})
	}
	if !fixtures.IsReserveRateTier(r.ReserveRate) {
		errs = append(errs, validator.ValidationError{Field: "reserve_rate", Message: "must be one of 0, 10, 20"})
	}
	if r.ContractType != "" && !validator.IsInSlice(r.ContractType, []string{
		string(ContractSalaried), string(ContractCommission), string(ContractMixed),
	}) {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be one of salaried, commission, mixed"})
	}
	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CollaboratorResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Profession   string          `json:"profession"`
	Status       string          `json:"status"`
	FixedSalary  decimal.Decimal `json:"fixed_salary"`
	ReserveRate  decimal.Decimal `json:"reserve_rate"`
	ContractType string          `json:"contract_type"`
	Canton       string          `json:"canton"`
	CivilStatus  string          `json:"civil_status"`
	ManagerID    *string         `json:"manager_id,omitempty"`
}
