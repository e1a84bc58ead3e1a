package settlement

import (
	"github.com/shopspring/decimal"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/commission"
	"github.com/swisscourtage/brokerage-backend-go/internal/pkg/validator"
)

// GenerateRequest selects the statement period and the collaborators to
// settle. Dates are calendar days; the generator widens them to the full
// day (00:00:00.000 to 23:59:59.999), both inclusive.
type GenerateRequest struct {
	StartDate       string   `json:"start_date"` // YYYY-MM-DD
	EndDate         string   `json:"end_date"`   // YYYY-MM-DD
	CollaboratorIDs []string `json:"collaborator_ids"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
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

// Line pairs one ledger commission with this collaborator's parts of it.
type Line struct {
	Commission commission.Commission `json:"commission"`
	Parts      []commission.Part     `json:"parts"`
}

// Statement is the periodic settlement report of one collaborator. Derived
// on every request, never persisted.
type Statement struct {
	Collaborator     collaborator.Collaborator `json:"collaborator"`
	Lines            []Line                    `json:"lines"`
	TotalCommissions decimal.Decimal           `json:"total_commissions"` // brokerage-wide amounts
	TotalAgentAmount decimal.Decimal           `json:"total_agent_amount"`
	CommissionsCount int                       `json:"commissions_count"`
	ReserveRate      decimal.Decimal           `json:"reserve_rate"`
	ReserveAmount    decimal.Decimal           `json:"reserve_amount"`
	NetAmount        decimal.Decimal           `json:"net_amount"`
}
