package repositories

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
)

// PledgeReader defines read operations for pledge data.
// List methods are ordered by expected fulfillment date, latest first.
type PledgeReader interface {
	EntityReader[domain.Pledge]

	GetPledgesForDonor(ctx context.Context, donorID int64) ([]domain.Pledge, error)
	GetPledgesForCampaign(ctx context.Context, campaignID int64) ([]domain.Pledge, error)
	GetPledgesByStatus(ctx context.Context, status domain.PledgeStatus) ([]domain.Pledge, error)
}

// PledgeWriter defines write operations for pledge data
type PledgeWriter interface {
	EntityWriter[domain.Pledge]
}

// PledgeRepositoryFacade combines all pledge-related repository interfaces
type PledgeRepositoryFacade interface {
	PledgeReader
	PledgeWriter
}
