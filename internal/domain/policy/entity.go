package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

// PolicyStatus enum
type PolicyStatus string

const (
	PolicyStatusPending   PolicyStatus = "pending"
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusExpired   PolicyStatus = "expired"
	PolicyStatusCancelled PolicyStatus = "cancelled"
)

// SubProduct is one product inside a bundled ("multi") policy.
type SubProduct struct {
	Category   string          `json:"category"`
	Premium    decimal.Decimal `json:"premium"`
	Deductible decimal.Decimal `json:"deductible"`
}

// Policy - insurance contract sold to a client
type Policy struct {
	ID             string
	ClientID       string
	ProductType    string
	ProductsData   []SubProduct // non-empty only for bundled policies
	PremiumMonthly decimal.Decimal
	PremiumYearly  decimal.Decimal
	Status         PolicyStatus
	StartDate      *time.Time
	CreatedAt      time.Time
}

func (p Policy) IsActive() bool {
	return p.Status == PolicyStatusActive
}
