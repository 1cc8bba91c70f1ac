package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PledgeStatus is the fulfillment state of a pledge.
type PledgeStatus string

const (
	PledgePledged            PledgeStatus = "Pledged"
	PledgePartiallyFulfilled PledgeStatus = "Partially Fulfilled"
	PledgeFulfilled          PledgeStatus = "Fulfilled"
	PledgeCancelled          PledgeStatus = "Cancelled"
)

// Valid reports whether s is a known pledge status.
func (s PledgeStatus) Valid() bool {
	switch s {
	case PledgePledged, PledgePartiallyFulfilled, PledgeFulfilled, PledgeCancelled:
		return true
	}
	return false
}

// Pledge is a promise to donate PledgeAmount by ExpectedFulfillmentDate.
type Pledge struct {
	Identity
	DonorID                 *int64          `json:"donorId,omitempty"`
	CampaignID              *int64          `json:"campaignId,omitempty"`
	PledgeAmount            decimal.Decimal `json:"pledgeAmount"`
	Status                  PledgeStatus    `json:"status"`
	ExpectedFulfillmentDate time.Time       `json:"expectedFulfillmentDate"`
	PrayerNote              string          `json:"prayerNote"`
	Notes                   string          `json:"notes"`
	AuditFields
}

// NewPledge creates an unsaved pledge in the Pledged state.
func NewPledge(donorID *int64, amount decimal.Decimal, expected time.Time) Pledge {
	return Pledge{
		Identity:                NewIdentity(),
		DonorID:                 donorID,
		PledgeAmount:            amount,
		Status:                  PledgePledged,
		ExpectedFulfillmentDate: expected,
		AuditFields:             NewAuditFields(time.Now().UTC()),
	}
}

// WithAudit returns a copy carrying the given audit fields.
func (p Pledge) WithAudit(a AuditFields) Pledge {
	p.AuditFields = a
	return p
}

// WithIdentity returns a copy carrying the given id and uuid.
func (p Pledge) WithIdentity(id Identity) Pledge {
	p.Identity = id
	return p
}
