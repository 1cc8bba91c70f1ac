package store

import (
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/core/validation"
)

// DonorStore caches donors. Search matches first name, last name and company.
type DonorStore struct {
	*Store[domain.Donor]
}

func NewDonorStore(repo portsrepo.DonorRepositoryFacade, opts ...Option) *DonorStore {
	return &DonorStore{
		Store: New(Config[domain.Donor]{
			Name:     "donor",
			Repo:     repo,
			Search:   repo.FindByName,
			Validate: validation.Donor,
		}, opts...),
	}
}
