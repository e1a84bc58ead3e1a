package collaborator

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CollaboratorStatus enum
type CollaboratorStatus string

const (
	StatusActive   CollaboratorStatus = "active"
	StatusInactive CollaboratorStatus = "inactive"
)

// ContractType enum
type ContractType string

const (
	ContractSalaried   ContractType = "salaried"
	ContractCommission ContractType = "commission"
	ContractMixed      ContractType = "mixed"
)

// Collaborator - agent paid via commission and/or salary. Read-only input to
// the calculation core; the master record is owned elsewhere.
type Collaborator struct {
	ID                       string
	Name                     string
	Profession               string
	Status                   CollaboratorStatus
	FixedSalary              decimal.Decimal
	CommissionRateLCA        decimal.Decimal
	CommissionRateVIE        decimal.Decimal
	ManagerCommissionRateLCA decimal.Decimal
	ManagerCommissionRateVIE decimal.Decimal
	BonusRate                decimal.Decimal
	ReserveRate              decimal.Decimal // one of the configured tiers: 0, 10, 20
	ContractType             ContractType
	Canton                   string
	CivilStatus              string
	ManagerID                *string
	CreatedAt                time.Time
}

var marriedMarkers = []string{"marié", "married", "verheiratet"}

// IsMarried reports whether the civil status carries a married marker.
// "célibataire", "single" and friends fall through to false.
func (c Collaborator) IsMarried() bool {
	status := strings.ToLower(c.CivilStatus)
	for _, m := range marriedMarkers {
		if strings.Contains(status, m) {
			return true
		}
	}
	return false
}
