package repositories

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
)

// CampaignReader defines read operations for campaign data
type CampaignReader interface {
	EntityReader[domain.Campaign]

	// SearchByText matches name, code or description, case-insensitively.
	SearchByText(ctx context.Context, text string) ([]domain.Campaign, error)
}

// CampaignWriter defines write operations for campaign data
type CampaignWriter interface {
	EntityWriter[domain.Campaign]
}

// CampaignRepositoryFacade combines all campaign-related repository interfaces
type CampaignRepositoryFacade interface {
	CampaignReader
	CampaignWriter
}
