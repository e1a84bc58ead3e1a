package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

type GeneratePayslipsRequest struct {
	Month           int      `json:"month"` // 1-12
	Year            int      `json:"year"`
	CollaboratorIDs []string `json:"collaborator_ids"`
}

func (r *GeneratePayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}
	if len(r.CollaboratorIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "collaborator_ids", Message: "at least one is required"})
	}
	for _, id := range r.CollaboratorIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{Field: "collaborator_ids", Message: "must contain valid UUIDs"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Payslip is the monthly salary computation of one collaborator: fixed
// salary plus net commissions, minus flat-rate social contributions and
// cantonal withholding tax. Derived on every request, never persisted.
//
// The statutory figures are simplified approximations (flat rates, no
// contribution ceilings, no progressive brackets, no annual allowances) and
// are not certified payroll output.
type Payslip struct {
	Collaborator collaborator.Collaborator `json:"collaborator"`
	Month        int                       `json:"month"`
	Year         int                       `json:"year"`

	SalaireBrut     decimal.Decimal `json:"salaire_brut"`
	CommissionsBrut decimal.Decimal `json:"commissions_brut"`
	ReserveAmount   decimal.Decimal `json:"reserve_amount"`
	CommissionsNet  decimal.Decimal `json:"commissions_net"`
	TotalBrut       decimal.Decimal `json:"total_brut"`

	AVS                  decimal.Decimal `json:"avs"`
	AC                   decimal.Decimal `json:"ac"`
	LPP                  decimal.Decimal `json:"lpp"`
	AANP                 decimal.Decimal `json:"aanp"`
	TotalChargesSociales decimal.Decimal `json:"total_charges_sociales"`

	Canton          string          `json:"canton"`
	TauxImpotSource decimal.Decimal `json:"taux_impot_source"`
	ImpotSource     decimal.Decimal `json:"impot_source"`

	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetAPayer       decimal.Decimal `json:"net_a_payer"`
}
