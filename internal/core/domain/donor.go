package domain

import (
	"strings"
	"time"
)

// Donor is a person or company giving donations. It has no foreign references.
type Donor struct {
	Identity
	Company     string `json:"company"`
	Salutation  string `json:"salutation"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	JewishName  string `json:"jewishName"`
	Address     string `json:"address"`
	AddlLine    string `json:"addlLine"`
	Suite       string `json:"suite"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DonorSource string `json:"donorSource"`
	Notes       string `json:"notes"`
	AuditFields
}

// NewDonor creates an unsaved donor with a fresh uuid.
func NewDonor() Donor {
	return Donor{Identity: NewIdentity(), AuditFields: NewAuditFields(time.Now().UTC())}
}

// WithAudit returns a copy carrying the given audit fields.
func (d Donor) WithAudit(a AuditFields) Donor {
	d.AuditFields = a
	return d
}

// WithIdentity returns a copy carrying the given id and uuid.
func (d Donor) WithIdentity(id Identity) Donor {
	d.Identity = id
	return d
}

// DisplayName prefers "First Last", falling back to the company name.
func (d Donor) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName))
	if name != "" {
		return name
	}
	return strings.TrimSpace(d.Company)
}
