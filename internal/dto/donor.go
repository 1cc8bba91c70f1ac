package dto

import "github.com/SscSPs/donation_tracker/internal/core/domain"

// DonorRequest carries the editable donor fields. Business rules are
// checked by the store so the messages match the rest of the app.
type DonorRequest struct {
	Company     string `json:"company" binding:"max=255"`
	Salutation  string `json:"salutation" binding:"max=50"`
	FirstName   string `json:"firstName" binding:"max=100"`
	LastName    string `json:"lastName" binding:"max=100"`
	JewishName  string `json:"jewishName" binding:"max=255"`
	Address     string `json:"address" binding:"max=255"`
	AddlLine    string `json:"addlLine" binding:"max=255"`
	Suite       string `json:"suite" binding:"max=50"`
	City        string `json:"city" binding:"max=100"`
	State       string `json:"state" binding:"max=50"`
	Zip         string `json:"zip" binding:"max=20"`
	Email       string `json:"email" binding:"max=255"`
	Phone       string `json:"phone" binding:"max=50"`
	DonorSource string `json:"donorSource" binding:"max=100"`
	Notes       string `json:"notes"`
}

// ApplyTo copies the request onto d and returns the result.
func (r DonorRequest) ApplyTo(d domain.Donor) domain.Donor {
	d.Company = r.Company
	d.Salutation = r.Salutation
	d.FirstName = r.FirstName
	d.LastName = r.LastName
	d.JewishName = r.JewishName
	d.Address = r.Address
	d.AddlLine = r.AddlLine
	d.Suite = r.Suite
	d.City = r.City
	d.State = r.State
	d.Zip = r.Zip
	d.Email = r.Email
	d.Phone = r.Phone
	d.DonorSource = r.DonorSource
	d.Notes = r.Notes
	return d
}
