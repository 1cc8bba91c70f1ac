package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a fundraising campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignCompleted CampaignStatus = "COMPLETED"
	CampaignCancelled CampaignStatus = "CANCELLED"
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

// Campaign groups donations and pledges under a named code.
type Campaign struct {
	Identity
	CampaignCode string           `json:"campaignCode"` // unique
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	StartDate    *time.Time       `json:"startDate,omitempty"`
	EndDate      *time.Time       `json:"endDate,omitempty"`
	Status       CampaignStatus   `json:"status"`
	Goal         *decimal.Decimal `json:"goal,omitempty"`
	AuditFields
}

// NewCampaign creates an unsaved draft campaign.
func NewCampaign(code, name string) Campaign {
	return Campaign{
		Identity:     NewIdentity(),
		CampaignCode: code,
		Name:         name,
		Status:       CampaignDraft,
		AuditFields:  NewAuditFields(time.Now().UTC()),
	}
}

// WithAudit returns a copy carrying the given audit fields.
func (c Campaign) WithAudit(a AuditFields) Campaign {
	c.AuditFields = a
	return c
}

// WithIdentity returns a copy carrying the given id and uuid.
func (c Campaign) WithIdentity(id Identity) Campaign {
	c.Identity = id
	return c
}
