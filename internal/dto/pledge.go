package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PledgeRequest carries the editable pledge fields.
type PledgeRequest struct {
	DonorID                 *int64              `json:"donorId"`
	CampaignID              *int64              `json:"campaignId"`
	PledgeAmount            decimal.Decimal     `json:"pledgeAmount"`
	Status                  domain.PledgeStatus `json:"status"`
	ExpectedFulfillmentDate *time.Time          `json:"expectedFulfillmentDate"`
	PrayerNote              string              `json:"prayerNote"`
	Notes                   string              `json:"notes"`
}

// Check rejects unknown statuses; the values contain spaces so oneof cannot express them.
func (r PledgeRequest) Check() error {
	if r.Status != "" && !r.Status.Valid() {
		return fmt.Errorf("unknown pledge status %q", r.Status)
	}
	return nil
}

func (r PledgeRequest) ApplyTo(p domain.Pledge) domain.Pledge {
	p.DonorID = r.DonorID
	p.CampaignID = r.CampaignID
	p.PledgeAmount = r.PledgeAmount
	if r.Status != "" {
		p.Status = r.Status
	}
	p.ExpectedFulfillmentDate = time.Time{}
	if r.ExpectedFulfillmentDate != nil {
		p.ExpectedFulfillmentDate = r.ExpectedFulfillmentDate.UTC()
	}
	p.PrayerNote = r.PrayerNote
	p.Notes = r.Notes
	return p
}
