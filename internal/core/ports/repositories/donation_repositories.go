package repositories

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DonationReader defines read operations for donation data.
// List methods are ordered by donation date, newest first.
type DonationReader interface {
	EntityReader[domain.Donation]

	GetDonationsForDonor(ctx context.Context, donorID int64) ([]domain.Donation, error)
	GetDonationsForCampaign(ctx context.Context, campaignID int64) ([]domain.Donation, error)
	GetDonationsForIncentive(ctx context.Context, incentiveID int64) ([]domain.Donation, error)

	// GetTotalDonationsAmount sums every donation of a donor; zero when there are none.
	GetTotalDonationsAmount(ctx context.Context, donorID int64) (decimal.Decimal, error)

	// CountPendingReceipts counts printed receipts that are requested or queued.
	CountPendingReceipts(ctx context.Context) (int, error)

	// GetReceiptRequests lists donations asking for a printed receipt in the given status.
	GetReceiptRequests(ctx context.Context, status domain.ReceiptStatus) ([]domain.Donation, error)
}

// DonationWriter defines write operations for donation data
type DonationWriter interface {
	EntityWriter[domain.Donation]

	// UpdateReceiptStatus changes only the receipt status (and updated_at).
	// Returns apperrors.ErrNotFound when the donation does not exist.
	UpdateReceiptStatus(ctx context.Context, id int64, status domain.ReceiptStatus) error
}

// DonationRepositoryFacade combines all donation-related repository interfaces
type DonationRepositoryFacade interface {
	DonationReader
	DonationWriter
}
