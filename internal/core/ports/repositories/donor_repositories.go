package repositories

import (
	"context"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
)

// DonorReader defines read operations for donor data
type DonorReader interface {
	EntityReader[domain.Donor]

	// FindByName matches first name, last name or company, case-insensitively,
	// ordered by last name then first name.
	FindByName(ctx context.Context, text string) ([]domain.Donor, error)
}

// DonorWriter defines write operations for donor data
type DonorWriter interface {
	EntityWriter[domain.Donor]
}

// DonorRepositoryFacade combines all donor-related repository interfaces
type DonorRepositoryFacade interface {
	DonorReader
	DonorWriter
}
