package store

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/core/validation"
)

// PledgeStore caches pledges. Unlike the other stores, a plain Load retries
// after a failed load.
type PledgeStore struct {
	*Store[domain.Pledge]
	repo portsrepo.PledgeRepositoryFacade

	donors    ReferenceChecker
	campaigns ReferenceChecker
}

func NewPledgeStore(repo portsrepo.PledgeRepositoryFacade, donors, campaigns ReferenceChecker, opts ...Option) *PledgeStore {
	s := &PledgeStore{repo: repo, donors: donors, campaigns: campaigns}
	s.Store = New(Config[domain.Pledge]{
		Name:            "pledge",
		Repo:            repo,
		Validate:        s.validate,
		ReloadFromError: true,
	}, opts...)
	return s
}

func (s *PledgeStore) validate(p domain.Pledge) error {
	if err := validation.Pledge(p); err != nil {
		return err
	}
	return checkReferences(
		reference{p.DonorID, s.donors, RulePledgeDonorMissing, "The selected donor no longer exists"},
		reference{p.CampaignID, s.campaigns, RulePledgeCampaignMissing, "The selected campaign no longer exists"},
	)
}

// ForDonor lists the donor's pledges from storage, newest expected date first.
func (s *PledgeStore) ForDonor(ctx context.Context, donorID int64) ([]domain.Pledge, error) {
	return s.repo.GetPledgesForDonor(ctx, donorID)
}

// ByStatus lists pledges in the given status from storage.
func (s *PledgeStore) ByStatus(ctx context.Context, status domain.PledgeStatus) ([]domain.Pledge, error) {
	return s.repo.GetPledgesByStatus(ctx, status)
}
