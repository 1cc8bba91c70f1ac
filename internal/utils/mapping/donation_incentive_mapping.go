package mapping

import (
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/models"
)

// ToModelDonationIncentive converts a domain DonationIncentive to a model DonationIncentive
func ToModelDonationIncentive(d domain.DonationIncentive) models.DonationIncentive {
	status := d.Status
	if status == "" {
		status = domain.IncentiveActive
	}
	return models.DonationIncentive{
		ID:           d.ID,
		UUID:         d.UUID,
		Name:         d.Name,
		Description:  toNullString(d.Description),
		DollarAmount: d.DollarAmount,
		Status:       string(status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDonationIncentive converts a model DonationIncentive to a domain DonationIncentive
func ToDomainDonationIncentive(m models.DonationIncentive) domain.DonationIncentive {
	return domain.DonationIncentive{
		Identity:     domain.Identity{ID: m.ID, UUID: m.UUID},
		Name:         m.Name,
		Description:  m.Description.String,
		DollarAmount: m.DollarAmount,
		Status:       domain.DonationIncentiveStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
