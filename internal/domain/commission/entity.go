package commission

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionType enum
type CommissionType string

const (
	TypeAcquisition  CommissionType = "acquisition"
	TypeRenewal      CommissionType = "renewal"
	TypeBonus        CommissionType = "bonus"
	TypeGestion      CommissionType = "gestion"
	TypeDecommission CommissionType = "decommission" // negative correction, same lifecycle
)

// CommissionStatus enum. Transitions only move forward:
// pending -> due -> paid.
type CommissionStatus string

const (
	StatusPending CommissionStatus = "pending"
	StatusDue     CommissionStatus = "due"
	StatusPaid    CommissionStatus = "paid"
)

// Commission - amount earned by the brokerage on a policy, later split
// between the brokerage and collaborators.
type Commission struct {
	ID        string
	PolicyID  string
	Amount    decimal.Decimal
	Type      CommissionType
	Status    CommissionStatus
	Date      *time.Time // explicit commission date, CreatedAt otherwise
	CreatedAt time.Time
}

// EffectiveDate returns the explicit commission date when set, falling back
// to the creation timestamp.
func (c Commission) EffectiveDate() time.Time {
	if c.Date != nil {
		return *c.Date
	}
	return c.CreatedAt
}

// Part is one collaborator's share of one commission. Amount is precomputed
// at write time as commission.Amount * Rate / 100 and stored.
type Part struct {
	ID             string
	CommissionID   string
	CollaboratorID string
	Rate           decimal.Decimal // percentage, 0-100
	Amount         decimal.Decimal
	CreatedAt      time.Time
}

// CanTransition reports whether a status change moves forward in the
// lifecycle. Same-status updates are rejected too.
func CanTransition(from, to CommissionStatus) bool {
	order := map[CommissionStatus]int{
		StatusPending: 0,
		StatusDue:     1,
		StatusPaid:    2,
	}
	fromRank, ok := order[from]
	if !ok {
		return false
	}
	toRank, ok := order[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}
