package sqldb

import (
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
	"github.com/SscSPs/donation_tracker/pkg/database"
)

// NewRepositoryProvider builds every repository over the shared storage handle.
func NewRepositoryProvider(db DBTX, driver database.Driver, rec metrics.Recorder) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DonorRepo:     newSQLDonorRepository(db, driver, rec),
		DonationRepo:  newSQLDonationRepository(db, driver, rec),
		CampaignRepo:  newSQLCampaignRepository(db, driver, rec),
		IncentiveRepo: newSQLDonationIncentiveRepository(db, driver, rec),
		PledgeRepo:    newSQLPledgeRepository(db, driver, rec),
	}
}
