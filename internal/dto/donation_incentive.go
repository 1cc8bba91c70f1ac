package dto

import (
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DonationIncentiveRequest carries the editable incentive fields.
type DonationIncentiveRequest struct {
	Name         string                         `json:"name" binding:"max=255"`
	Description  string                         `json:"description"`
	DollarAmount decimal.Decimal                `json:"dollarAmount"`
	Status       domain.DonationIncentiveStatus `json:"status" binding:"omitempty,oneof=active inactive archived"`
}

func (r DonationIncentiveRequest) ApplyTo(i domain.DonationIncentive) domain.DonationIncentive {
	i.Name = r.Name
	i.Description = r.Description
	i.DollarAmount = r.DollarAmount
	if r.Status != "" {
		i.Status = r.Status
	}
	return i
}
