package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewEntities_AssignUUIDBeforeStorage(t *testing.T) {
	donor := domain.NewDonor()
	other := domain.NewDonor()

	assert.False(t, donor.IsPersisted())
	assert.Zero(t, donor.RecordID())
	assert.NotEmpty(t, donor.UUID)
	assert.NotEqual(t, donor.UUID, other.UUID)
	assert.Equal(t, donor.CreatedAt, donor.UpdatedAt)
}

func TestNewDonation_ReceiptStatusDefault(t *testing.T) {
	tests := []struct {
		name      string
		requested bool
		want      domain.ReceiptStatus
	}{
		{name: "printed receipt requested", requested: true, want: domain.ReceiptRequested},
		{name: "no printed receipt", requested: false, want: domain.ReceiptNotRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.NewDonation(decimal.NewFromInt(18), domain.DonationCash, tt.requested)
			assert.Equal(t, tt.want, d.ReceiptStatus)
			assert.Equal(t, domain.PaymentPending, d.PaymentStatus)
		})
	}
}

func TestWithAudit_ReturnsCopy(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	c := domain.NewCampaign("SPRING", "Spring Appeal")

	stamped := c.WithAudit(domain.AuditFields{CreatedAt: created, UpdatedAt: updated})

	assert.Equal(t, created, stamped.Audit().CreatedAt)
	assert.Equal(t, updated, stamped.Audit().UpdatedAt)
	assert.NotEqual(t, created, c.CreatedAt)
	assert.Equal(t, domain.CampaignDraft, c.Status)
}

func TestDonor_DisplayName(t *testing.T) {
	assert.Equal(t, "Sarah Cohen", domain.Donor{FirstName: "Sarah", LastName: "Cohen"}.DisplayName())
	assert.Equal(t, "Acme Corp", domain.Donor{Company: " Acme Corp "}.DisplayName())
	assert.Equal(t, "Levi", domain.Donor{LastName: "Levi", Company: "Acme"}.DisplayName())
}

func TestSameRef(t *testing.T) {
	assert.True(t, domain.SameRef(nil, nil))
	assert.True(t, domain.SameRef(domain.Int64Ptr(3), domain.Int64Ptr(3)))
	assert.False(t, domain.SameRef(domain.Int64Ptr(3), nil))
	assert.False(t, domain.SameRef(domain.Int64Ptr(3), domain.Int64Ptr(4)))
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, domain.CampaignActive.Valid())
	assert.False(t, domain.CampaignStatus("PAUSED").Valid())
	assert.True(t, domain.IncentiveArchived.Valid())
	assert.False(t, domain.DonationIncentiveStatus("ACTIVE").Valid())
	assert.True(t, domain.PledgePartiallyFulfilled.Valid())
	assert.True(t, domain.ReceiptQueued.Valid())
}
