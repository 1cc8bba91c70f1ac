// Package validation holds the storage-free checks run before every insert
// and update. Each function returns nil or an *apperrors.ValidationError.
package validation

import (
	"strings"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// Rule identifiers carried by ValidationError.Rule.
const (
	RuleDonorNameRequired         = "donor_name_required"
	RuleDonorEmailFormat          = "donor_email_format"
	RuleAmountPositive            = "amount_positive"
	RuleDonationDonorRequired     = "donation_donor_required"
	RuleIncentiveNameRequired     = "incentive_name_required"
	RuleIncentiveAmountPositive   = "incentive_amount_positive"
	RulePledgeAmountPositive      = "pledge_amount_positive"
	RulePledgeDonorRequired       = "pledge_donor_required"
	RulePledgeFulfillmentRequired = "pledge_fulfillment_date_required"
	RuleCampaignNameRequired      = "campaign_name_required"
	RuleCampaignDateRange         = "campaign_date_range"
	RuleCampaignGoalPositive      = "campaign_goal_positive"
)

// validator.Validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Donor requires a company or a last name, and a well-formed email when one is given.
func Donor(d domain.Donor) error {
	if isBlank(d.Company) && isBlank(d.LastName) {
		return apperrors.NewValidationError(RuleDonorNameRequired, "Donor must have a company or last name")
	}
	if email := strings.TrimSpace(d.Email); email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return apperrors.NewValidationError(RuleDonorEmailFormat, "Invalid email format")
		}
	}
	return nil
}

// Donation requires a positive amount and a donor unless the gift is anonymous.
func Donation(d domain.Donation) error {
	if !d.Amount.IsPositive() {
		return apperrors.NewValidationError(RuleAmountPositive, "Amount must be greater than zero")
	}
	if !d.IsAnonymous && d.DonorID == nil {
		return apperrors.NewValidationError(RuleDonationDonorRequired, "Donation must be associated with a donor")
	}
	return nil
}

func DonationIncentive(i domain.DonationIncentive) error {
	if isBlank(i.Name) {
		return apperrors.NewValidationError(RuleIncentiveNameRequired, "Incentive name cannot be empty")
	}
	if !i.DollarAmount.IsPositive() {
		return apperrors.NewValidationError(RuleIncentiveAmountPositive, "Dollar amount must be greater than zero")
	}
	return nil
}

func Pledge(p domain.Pledge) error {
	if !p.PledgeAmount.IsPositive() {
		return apperrors.NewValidationError(RulePledgeAmountPositive, "Pledge amount must be greater than zero.")
	}
	if p.DonorID == nil {
		return apperrors.NewValidationError(RulePledgeDonorRequired, "Pledge must be associated with a donor.")
	}
	if p.ExpectedFulfillmentDate.IsZero() {
		return apperrors.NewValidationError(RulePledgeFulfillmentRequired, "Pledge must have an expected fulfillment date.")
	}
	return nil
}

// Campaign checks the name, the date range when both ends are set, and the goal when set.
func Campaign(c domain.Campaign) error {
	if isBlank(c.Name) {
		return apperrors.NewValidationError(RuleCampaignNameRequired, "Campaign name cannot be empty")
	}
	if c.StartDate != nil && c.EndDate != nil && !c.EndDate.After(*c.StartDate) {
		return apperrors.NewValidationError(RuleCampaignDateRange, "End date must be after start date")
	}
	if c.Goal != nil && !c.Goal.IsPositive() {
		return apperrors.NewValidationError(RuleCampaignGoalPositive, "Goal amount must be greater than zero")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
