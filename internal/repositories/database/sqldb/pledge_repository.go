package sqldb

import (
	"context"
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/models"
	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
	"github.com/SscSPs/donation_tracker/internal/utils/mapping"
	"github.com/SscSPs/donation_tracker/pkg/database"
)

type SQLPledgeRepository struct {
	crudRepository[domain.Pledge]
}

// newSQLPledgeRepository creates a new repository for pledge data.
func newSQLPledgeRepository(db DBTX, driver database.Driver, rec metrics.Recorder) *SQLPledgeRepository {
	return &SQLPledgeRepository{crudRepository[domain.Pledge]{
		BaseRepository: newBaseRepository(db, driver, rec, "pledge"),
		spec: tableSpec[domain.Pledge]{
			name: "pledge",
			columns: []string{
				"donor_id", "campaign_id", "pledge_amount", "status",
				"expected_fulfillment_date", "prayer_note", "notes",
			},
			values:  pledgeValues,
			scan:    scanPledge,
			orderBy: "expected_fulfillment_date DESC, id DESC",
		},
	}}
}

// Ensure implementation matches interface
var _ portsrepo.PledgeRepositoryFacade = (*SQLPledgeRepository)(nil)

func pledgeValues(p domain.Pledge) []any {
	m := mapping.ToModelPledge(p)
	return []any{m.DonorID, m.CampaignID, m.PledgeAmount, m.Status, m.ExpectedFulfillmentDate, m.PrayerNote, m.Notes}
}

func scanPledge(row rowScanner) (domain.Pledge, error) {
	var m models.Pledge
	err := row.Scan(
		&m.ID, &m.UUID,
		&m.DonorID, &m.CampaignID, &m.PledgeAmount, &m.Status,
		&m.ExpectedFulfillmentDate, &m.PrayerNote, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return mapping.ToDomainPledge(m), err
}

func (r *SQLPledgeRepository) GetPledgesForDonor(ctx context.Context, donorID int64) (_ []domain.Pledge, err error) {
	defer r.track(ctx, "get_for_donor", time.Now(), &err)
	return r.list(ctx, "donor_id = ?", "", donorID)
}

func (r *SQLPledgeRepository) GetPledgesForCampaign(ctx context.Context, campaignID int64) (_ []domain.Pledge, err error) {
	defer r.track(ctx, "get_for_campaign", time.Now(), &err)
	return r.list(ctx, "campaign_id = ?", "", campaignID)
}

func (r *SQLPledgeRepository) GetPledgesByStatus(ctx context.Context, status domain.PledgeStatus) (_ []domain.Pledge, err error) {
	defer r.track(ctx, "get_by_status", time.Now(), &err)
	return r.list(ctx, "status = ?", "", string(status))
}
