package store

import "github.com/SscSPs/donation_tracker/internal/apperrors"

// Rules for references that point at ids the referenced store does not have.
const (
	RuleDonationDonorMissing     = "donation_donor_missing"
	RuleDonationCampaignMissing  = "donation_campaign_missing"
	RuleDonationIncentiveMissing = "donation_incentive_missing"
	RulePledgeDonorMissing       = "pledge_donor_missing"
	RulePledgeCampaignMissing    = "pledge_campaign_missing"
)

// ReferenceChecker answers whether an id exists in another store's cache.
// Every *Store implements it.
type ReferenceChecker interface {
	Contains(id int64) (found, checked bool)
}

// reference is one optional foreign id and the store it must exist in.
type reference struct {
	id      *int64
	in      ReferenceChecker
	rule    string
	message string
}

// checkReferences reads the referenced caches without locking them. A store
// that has never completed a full load cannot answer and is skipped.
func checkReferences(refs ...reference) error {
	for _, ref := range refs {
		if ref.id == nil || ref.in == nil {
			continue
		}
		if found, checked := ref.in.Contains(*ref.id); checked && !found {
			return apperrors.NewValidationError(ref.rule, ref.message)
		}
	}
	return nil
}
