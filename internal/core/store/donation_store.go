package store

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/core/validation"
	"github.com/shopspring/decimal"
)

// DonationStore caches donations and checks their donor, campaign and
// incentive against the corresponding stores before writing.
type DonationStore struct {
	*Store[domain.Donation]
	repo portsrepo.DonationRepositoryFacade

	donors     ReferenceChecker
	campaigns  ReferenceChecker
	incentives ReferenceChecker
	report     reportSources
}

// NewDonationStore creates the store. Any checker may be nil to skip that reference.
func NewDonationStore(repo portsrepo.DonationRepositoryFacade, donors, campaigns, incentives ReferenceChecker, opts ...Option) *DonationStore {
	s := &DonationStore{repo: repo, donors: donors, campaigns: campaigns, incentives: incentives}
	s.Store = New(Config[domain.Donation]{
		Name:     "donation",
		Repo:     repo,
		Validate: s.validate,
	}, opts...)
	return s
}

func (s *DonationStore) validate(d domain.Donation) error {
	if err := validation.Donation(d); err != nil {
		return err
	}
	return checkReferences(
		reference{d.DonorID, s.donors, RuleDonationDonorMissing, "The selected donor no longer exists"},
		reference{d.CampaignID, s.campaigns, RuleDonationCampaignMissing, "The selected campaign no longer exists"},
		reference{d.DonationIncentiveID, s.incentives, RuleDonationIncentiveMissing, "The selected incentive no longer exists"},
	)
}

// TotalForDonor sums every stored donation of the donor.
func (s *DonationStore) TotalForDonor(ctx context.Context, donorID int64) (decimal.Decimal, error) {
	return s.repo.GetTotalDonationsAmount(ctx, donorID)
}

// CountPendingReceipts counts printed receipts still requested or queued.
func (s *DonationStore) CountPendingReceipts(ctx context.Context) (int, error) {
	return s.repo.CountPendingReceipts(ctx)
}

// UpdateReceiptStatus changes the receipt status in storage, then replaces
// the cached donation with the stored row.
func (s *DonationStore) UpdateReceiptStatus(ctx context.Context, id int64, status domain.ReceiptStatus) (domain.Donation, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.UpdateReceiptStatus(ctx, id, status); err != nil {
		return domain.Donation{}, err
	}
	stored, err := s.repo.GetOne(ctx, id)
	if err != nil {
		return domain.Donation{}, err
	}
	if stored == nil {
		return domain.Donation{}, apperrors.NotFound(s.Name(), id)
	}
	s.replace(*stored)
	return *stored, nil
}

// ForDonor lists the donor's donations from storage, newest first.
func (s *DonationStore) ForDonor(ctx context.Context, donorID int64) ([]domain.Donation, error) {
	return s.repo.GetDonationsForDonor(ctx, donorID)
}
