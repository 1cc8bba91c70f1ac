package store

import (
	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/core/validation"
)

// CampaignStore caches campaigns. Search matches name, code and description.
type CampaignStore struct {
	*Store[domain.Campaign]
}

func NewCampaignStore(repo portsrepo.CampaignRepositoryFacade, opts ...Option) *CampaignStore {
	return &CampaignStore{
		Store: New(Config[domain.Campaign]{
			Name:     "campaign",
			Repo:     repo,
			Search:   repo.SearchByText,
			Validate: validation.Campaign,
		}, opts...),
	}
}
