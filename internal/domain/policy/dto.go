package policy

import (
	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

type CreatePolicyRequest struct {
	ClientID       string          `json:"client_id"`
	ProductType    string          `json:"product_type"`
	ProductsData   []SubProduct    `json:"products_data,omitempty"`
	PremiumMonthly decimal.Decimal `json:"premium_monthly"`
	PremiumYearly  decimal.Decimal `json:"premium_yearly"`
	Status         string          `json:"status"`
	StartDate      *string         `json:"start_date,omitempty"`
}

func (r *CreatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ProductType) {
		errs = append(errs, validator.ValidationError{Field: "product_type", Message: "is required"})
	}
	if r.PremiumMonthly.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "premium_monthly", Message: "must be non-negative"})
	}
	if r.PremiumYearly.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "premium_yearly", Message: "must be non-negative"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		string(PolicyStatusPending), string(PolicyStatusActive),
		string(PolicyStatusExpired), string(PolicyStatusCancelled),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, active, expired, cancelled"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePolicyStatusRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *UpdatePolicyStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(PolicyStatusPending), string(PolicyStatusActive),
		string(PolicyStatusExpired), string(PolicyStatusCancelled),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, active, expired, cancelled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	ProductType    string          `json:"product_type"`
	Category       string          `json:"category"`
	ProductsData   []SubProduct    `json:"products_data,omitempty"`
	PremiumMonthly decimal.Decimal `json:"premium_monthly"`
	PremiumYearly  decimal.Decimal `json:"premium_yearly"`
	Status         string          `json:"status"`
	StartDate      *string         `json:"start_date,omitempty"`
	CreatedAt      string          `json:"created_at"`
}
