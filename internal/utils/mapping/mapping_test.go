package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToModelDonor_EmptyTextBecomesNull(t *testing.T) {
	d := domain.Donor{LastName: "Katz", Email: ""}

	m := mapping.ToModelDonor(d)

	assert.True(t, m.LastName.Valid)
	assert.False(t, m.Email.Valid)
	assert.False(t, m.Company.Valid)
}

func TestToModelDonation_Defaults(t *testing.T) {
	d := domain.Donation{Amount: decimal.NewFromInt(5), RequestPrintedReceipt: true}

	m := mapping.ToModelDonation(d)

	assert.Equal(t, string(domain.ReceiptRequested), m.ReceiptStatus)
	assert.Equal(t, string(domain.PaymentPending), m.PaymentStatus)
	assert.False(t, m.DonorID.Valid)
}

func TestDonationReferences_SurviveMapping(t *testing.T) {
	d := domain.Donation{DonorID: domain.Int64Ptr(7), DonationIncentiveID: domain.Int64Ptr(2)}

	back := mapping.ToDomainDonation(mapping.ToModelDonation(d))

	assert.Equal(t, domain.Int64Ptr(7), back.DonorID)
	assert.Nil(t, back.CampaignID)
	assert.Equal(t, domain.Int64Ptr(2), back.DonationIncentiveID)
}

func TestCampaignOptionalFields(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.FixedZone("EST", -5*3600))
	goal := decimal.RequireFromString("1800.50")
	c := domain.Campaign{Name: "Purim", StartDate: &start, Goal: &goal}

	m := mapping.ToModelCampaign(c)
	back := mapping.ToDomainCampaign(m)

	assert.Equal(t, string(domain.CampaignDraft), m.Status)
	assert.True(t, m.StartDate.Valid)
	assert.Equal(t, time.UTC, m.StartDate.Time.Location())
	assert.False(t, m.EndDate.Valid)
	assert.Nil(t, back.EndDate)
	assert.True(t, start.Equal(*back.StartDate))
	assert.True(t, goal.Equal(*back.Goal))
}
