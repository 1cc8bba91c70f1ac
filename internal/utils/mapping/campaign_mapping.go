package mapping

import (
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/models"
)

// ToModelCampaign converts a domain Campaign to a model Campaign
func ToModelCampaign(d domain.Campaign) models.Campaign {
	status := d.Status
	if status == "" {
		status = domain.CampaignDraft
	}
	return models.Campaign{
		ID:           d.ID,
		UUID:         d.UUID,
		CampaignCode: d.CampaignCode,
		Name:         d.Name,
		Description:  toNullString(d.Description),
		StartDate:    toNullTime(d.StartDate),
		EndDate:      toNullTime(d.EndDate),
		Status:       string(status),
		Goal:         toNullDecimal(d.Goal),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCampaign converts a model Campaign to a domain Campaign
func ToDomainCampaign(m models.Campaign) domain.Campaign {
	return domain.Campaign{
		Identity:     domain.Identity{ID: m.ID, UUID: m.UUID},
		CampaignCode: m.CampaignCode,
		Name:         m.Name,
		Description:  m.Description.String,
		StartDate:    fromNullTime(m.StartDate),
		EndDate:      fromNullTime(m.EndDate),
		Status:       domain.CampaignStatus(m.Status),
		Goal:         fromNullDecimal(m.Goal),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
