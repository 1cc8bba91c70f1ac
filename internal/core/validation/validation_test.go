package validation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/SscSPs/donation_tracker/internal/core/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertRule(t *testing.T, err error, want string) {
	t.Helper()
	if want == "" {
		assert.NoError(t, err)
		return
	}
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	rule, ok := apperrors.RuleOf(err)
	assert.True(t, ok)
	assert.Equal(t, want, rule)
}

func TestDonor(t *testing.T) {
	tests := []struct {
		name  string
		donor domain.Donor
		want  string
	}{
		{name: "company and last name empty", donor: domain.Donor{FirstName: "Ada"}, want: validation.RuleDonorNameRequired},
		{name: "whitespace only counts as empty", donor: domain.Donor{Company: "  ", LastName: "\t"}, want: validation.RuleDonorNameRequired},
		{name: "last name only", donor: domain.Donor{LastName: "Lovelace"}},
		{name: "company only", donor: domain.Donor{Company: "Analytical Engines Ltd"}},
		{name: "valid email", donor: domain.Donor{LastName: "Cohen", Email: "sarah.cohen+gifts@example.org"}},
		{name: "malformed email", donor: domain.Donor{LastName: "Cohen", Email: "sarah.cohen@"}, want: validation.RuleDonorEmailFormat},
		{name: "email without domain dot", donor: domain.Donor{LastName: "Cohen", Email: "not an email"}, want: validation.RuleDonorEmailFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRule(t, validation.Donor(tt.donor), tt.want)
		})
	}
}

func TestDonation(t *testing.T) {
	tests := []struct {
		name     string
		donation domain.Donation
		want     string
	}{
		{
			name:     "zero amount",
			donation: domain.Donation{Amount: decimal.Zero, DonorID: domain.Int64Ptr(5)},
			want:     validation.RuleAmountPositive,
		},
		{
			name:     "negative amount",
			donation: domain.Donation{Amount: decimal.NewFromInt(-1), DonorID: domain.Int64Ptr(5)},
			want:     validation.RuleAmountPositive,
		},
		{
			name:     "missing donor on named donation",
			donation: domain.Donation{Amount: decimal.NewFromInt(10)},
			want:     validation.RuleDonationDonorRequired,
		},
		{
			name:     "anonymous donation without donor",
			donation: domain.Donation{Amount: decimal.NewFromInt(10), IsAnonymous: true},
		},
		{
			name:     "named donation with donor",
			donation: domain.Donation{Amount: decimal.RequireFromString("0.01"), DonorID: domain.Int64Ptr(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRule(t, validation.Donation(tt.donation), tt.want)
		})
	}
}

func TestDonation_MessagesAreUserFacing(t *testing.T) {
	err := validation.Donation(domain.Donation{Amount: decimal.Zero, DonorID: domain.Int64Ptr(5)})
	assert.EqualError(t, err, "Amount must be greater than zero")

	err = validation.Donation(domain.Donation{Amount: decimal.NewFromInt(10)})
	assert.EqualError(t, err, "Donation must be associated with a donor")
}

func TestDonationIncentive(t *testing.T) {
	assertRule(t, validation.DonationIncentive(domain.DonationIncentive{DollarAmount: decimal.NewFromInt(36)}), validation.RuleIncentiveNameRequired)
	assertRule(t, validation.DonationIncentive(domain.DonationIncentive{Name: "Tote bag"}), validation.RuleIncentiveAmountPositive)
	assertRule(t, validation.DonationIncentive(domain.DonationIncentive{Name: "Tote bag", DollarAmount: decimal.NewFromInt(36)}), "")
}

func TestPledge(t *testing.T) {
	due := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	assertRule(t, validation.Pledge(domain.Pledge{DonorID: domain.Int64Ptr(1), ExpectedFulfillmentDate: due}), validation.RulePledgeAmountPositive)
	assertRule(t, validation.Pledge(domain.Pledge{PledgeAmount: decimal.NewFromInt(100), ExpectedFulfillmentDate: due}), validation.RulePledgeDonorRequired)
	assertRule(t, validation.Pledge(domain.Pledge{PledgeAmount: decimal.NewFromInt(100), DonorID: domain.Int64Ptr(1)}), validation.RulePledgeFulfillmentRequired)
	assertRule(t, validation.Pledge(domain.NewPledge(domain.Int64Ptr(1), decimal.NewFromInt(100), due)), "")
}

func TestCampaign(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)
	goal := decimal.NewFromInt(50000)
	zero := decimal.Zero

	valid := domain.NewCampaign("WINTER25", "Winter Appeal")
	valid.StartDate, valid.EndDate, valid.Goal = &start, &end, &goal
	assertRule(t, validation.Campaign(valid), "")

	unnamed := valid
	unnamed.Name = " "
	assertRule(t, validation.Campaign(unnamed), validation.RuleCampaignNameRequired)

	backwards := valid
	backwards.StartDate, backwards.EndDate = &end, &start
	assertRule(t, validation.Campaign(backwards), validation.RuleCampaignDateRange)

	noGoal := valid
	noGoal.Goal = &zero
	assertRule(t, validation.Campaign(noGoal), validation.RuleCampaignGoalPositive)

	openEnded := domain.NewCampaign("OPEN", "Open Fund")
	assertRule(t, validation.Campaign(openEnded), "")
}
