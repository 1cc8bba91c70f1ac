package store

import (
	"context"
	"fmt"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/core/validation"
)

// RuleIncentiveInUse refuses to delete an incentive that donations still point at.
const RuleIncentiveInUse = "incentive_in_use"

// DonationIncentiveStore caches incentives. Search matches the name.
type DonationIncentiveStore struct {
	*Store[domain.DonationIncentive]
	repo portsrepo.DonationIncentiveRepositoryFacade
}

func NewDonationIncentiveStore(repo portsrepo.DonationIncentiveRepositoryFacade, opts ...Option) *DonationIncentiveStore {
	s := &DonationIncentiveStore{repo: repo}
	s.Store = New(Config[domain.DonationIncentive]{
		Name:         "donation_incentive",
		Repo:         repo,
		Search:       repo.FindByName,
		Validate:     validation.DonationIncentive,
		BeforeDelete: s.ensureUnused,
	}, opts...)
	return s
}

func (s *DonationIncentiveStore) ensureUnused(ctx context.Context, id int64) error {
	inUse, err := s.repo.IsIncentiveInUse(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check incentive usage: %w", err)
	}
	if inUse {
		return apperrors.NewValidationError(RuleIncentiveInUse, "This incentive is used by existing donations and cannot be deleted")
	}
	return nil
}
