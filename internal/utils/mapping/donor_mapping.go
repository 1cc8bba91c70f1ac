package mapping

import (
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/models"
)

// ToModelDonor converts a domain Donor to a model Donor
func ToModelDonor(d domain.Donor) models.Donor {
	return models.Donor{
		ID:          d.ID,
		UUID:        d.UUID,
		Company:     toNullString(d.Company),
		Salutation:  toNullString(d.Salutation),
		FirstName:   toNullString(d.FirstName),
		LastName:    toNullString(d.LastName),
		JewishName:  toNullString(d.JewishName),
		Address:     toNullString(d.Address),
		AddlLine:    toNullString(d.AddlLine),
		Suite:       toNullString(d.Suite),
		City:        toNullString(d.City),
		State:       toNullString(d.State),
		Zip:         toNullString(d.Zip),
		Email:       toNullString(d.Email),
		Phone:       toNullString(d.Phone),
		DonorSource: toNullString(d.DonorSource),
		Notes:       toNullString(d.Notes),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDonor converts a model Donor to a domain Donor
func ToDomainDonor(m models.Donor) domain.Donor {
	return domain.Donor{
		Identity:    domain.Identity{ID: m.ID, UUID: m.UUID},
		Company:     m.Company.String,
		Salutation:  m.Salutation.String,
		FirstName:   m.FirstName.String,
		LastName:    m.LastName.String,
		JewishName:  m.JewishName.String,
		Address:     m.Address.String,
		AddlLine:    m.AddlLine.String,
		Suite:       m.Suite.String,
		City:        m.City.String,
		State:       m.State.String,
		Zip:         m.Zip.String,
		Email:       m.Email.String,
		Phone:       m.Phone.String,
		DonorSource: m.DonorSource.String,
		Notes:       m.Notes.String,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
