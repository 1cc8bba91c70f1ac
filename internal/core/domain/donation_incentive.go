package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationIncentiveStatus controls whether an incentive can still be offered.
type DonationIncentiveStatus string

const (
	IncentiveActive   DonationIncentiveStatus = "active"
	IncentiveInactive DonationIncentiveStatus = "inactive"
	IncentiveArchived DonationIncentiveStatus = "archived"
)

// Valid reports whether s is a known incentive status.
func (s DonationIncentiveStatus) Valid() bool {
	switch s {
	case IncentiveActive, IncentiveInactive, IncentiveArchived:
		return true
	}
	return false
}

// DonationIncentive is a gift offered to donors giving at least DollarAmount.
type DonationIncentive struct {
	Identity
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	DollarAmount decimal.Decimal         `json:"dollarAmount"`
	Status       DonationIncentiveStatus `json:"status"`
	AuditFields
}

// NewDonationIncentive creates an unsaved, active incentive.
func NewDonationIncentive(name string, dollarAmount decimal.Decimal) DonationIncentive {
	return DonationIncentive{
		Identity:     NewIdentity(),
		Name:         name,
		DollarAmount: dollarAmount,
		Status:       IncentiveActive,
		AuditFields:  NewAuditFields(time.Now().UTC()),
	}
}

// WithAudit returns a copy carrying the given audit fields.
func (i DonationIncentive) WithAudit(a AuditFields) DonationIncentive {
	i.AuditFields = a
	return i
}

// WithIdentity returns a copy carrying the given id and uuid.
func (i DonationIncentive) WithIdentity(id Identity) DonationIncentive {
	i.Identity = id
	return i
}
