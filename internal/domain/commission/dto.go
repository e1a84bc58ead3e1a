package commission

import (
	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

type CreateCommissionRequest struct {
	PolicyID string          `json:"policy_id"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
	Date     *string         `json:"date,omitempty"`
}

func (r *CreateCommissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PolicyID) {
		errs = append(errs, validator.ValidationError{Field: "policy_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.PolicyID) {
		errs = append(errs, validator.ValidationError{Field: "policy_id", Message: "must be a valid UUID"})
	}
	if !validator.IsInSlice(r.Type, []string{
		string(TypeAcquisition), string(TypeRenewal), string(TypeBonus),
		string(TypeGestion), string(TypeDecommission),
	}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of acquisition, renewal, bonus, gestion, decommission"})
	}
	// Decommissions carry negative amounts, everything else must not.
	if r.Type != string(TypeDecommission) && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCommissionStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdateCommissionStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(StatusPending), string(StatusDue), string(StatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, due, paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddPartRequest struct {
	CommissionID   string
	CollaboratorID string          `json:"collaborator_id"`
	Rate           decimal.Decimal `json:"rate"`
}

func (r *AddPartRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CollaboratorID) {
		errs = append(errs, validator.ValidationError{Field: "collaborator_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.CollaboratorID) {
		errs = append(errs, validator.ValidationError{Field: "collaborator_id", Message: "must be a valid UUID"})
	}
	if r.Rate.IsNegative() || r.Rate.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CommissionResponse struct {
	ID        string          `json:"id"`
	PolicyID  string          `json:"policy_id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Date      *string         `json:"date,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// PartResponse reports the created split plus the state of the whole
// commission after the write. RateAnomaly is set when the rates across all
// parts of the commission exceed 100%; the write is accepted anyway and the
// flag exists for data-quality review.
type PartResponse struct {
	ID             string          `json:"id"`
	CommissionID   string          `json:"commission_id"`
	CollaboratorID string          `json:"collaborator_id"`
	Rate           decimal.Decimal `json:"rate"`
	Amount         decimal.Decimal `json:"amount"`
	TotalRate      decimal.Decimal `json:"total_rate"`
	BrokerageShare decimal.Decimal `json:"brokerage_share"`
	RateAnomaly    bool            `json:"rate_anomaly"`
}
