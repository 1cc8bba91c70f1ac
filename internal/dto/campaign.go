package dto

import (
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CampaignRequest carries the editable campaign fields.
type CampaignRequest struct {
	CampaignCode string                `json:"campaignCode" binding:"required,max=50"`
	Name         string                `json:"name" binding:"max=255"`
	Description  string                `json:"description"`
	StartDate    *time.Time            `json:"startDate"`
	EndDate      *time.Time            `json:"endDate"`
	Status       domain.CampaignStatus `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE COMPLETED CANCELLED"`
	Goal         *decimal.Decimal      `json:"goal"`
}

func (r CampaignRequest) ApplyTo(c domain.Campaign) domain.Campaign {
	c.CampaignCode = r.CampaignCode
	c.Name = r.Name
	c.Description = r.Description
	c.StartDate = r.StartDate
	c.EndDate = r.EndDate
	if r.Status != "" {
		c.Status = r.Status
	}
	c.Goal = r.Goal
	return c
}
