package repositories

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
)

// DonationIncentiveReader defines read operations for incentive data
type DonationIncentiveReader interface {
	EntityReader[domain.DonationIncentive]

	// FindByName matches the incentive name, case-insensitively, ordered by name.
	FindByName(ctx context.Context, text string) ([]domain.DonationIncentive, error)

	// IsIncentiveInUse reports whether any donation references the incentive.
	IsIncentiveInUse(ctx context.Context, id int64) (bool, error)
}

// DonationIncentiveWriter defines write operations for incentive data
type DonationIncentiveWriter interface {
	EntityWriter[domain.DonationIncentive]
}

// DonationIncentiveRepositoryFacade combines all incentive-related repository interfaces
type DonationIncentiveRepositoryFacade interface {
	DonationIncentiveReader
	DonationIncentiveWriter
}
