package mapping

import (
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/models"
)

// ToModelPledge converts a domain Pledge to a model Pledge
func ToModelPledge(d domain.Pledge) models.Pledge {
	status := d.Status
	if status == "" {
		status = domain.PledgePledged
	}
	return models.Pledge{
		ID:                      d.ID,
		UUID:                    d.UUID,
		DonorID:                 toNullInt64(d.DonorID),
		CampaignID:              toNullInt64(d.CampaignID),
		PledgeAmount:            d.PledgeAmount,
		Status:                  string(status),
		ExpectedFulfillmentDate: d.ExpectedFulfillmentDate.UTC(),
		PrayerNote:              toNullString(d.PrayerNote),
		Notes:                   toNullString(d.Notes),
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPledge converts a model Pledge to a domain Pledge
func ToDomainPledge(m models.Pledge) domain.Pledge {
	return domain.Pledge{
		Identity:                domain.Identity{ID: m.ID, UUID: m.UUID},
		DonorID:                 fromNullInt64(m.DonorID),
		CampaignID:              fromNullInt64(m.CampaignID),
		PledgeAmount:            m.PledgeAmount,
		Status:                  domain.PledgeStatus(m.Status),
		ExpectedFulfillmentDate: m.ExpectedFulfillmentDate.UTC(),
		PrayerNote:              m.PrayerNote.String,
		Notes:                   m.Notes.String,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}
