package sqldb

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/models"
	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
	"github.com/SscSPs/donation_tracker/internal/utils/mapping"
	"github.com/SscSPs/donation_tracker/pkg/database"
)

type SQLCampaignRepository struct {
	crudRepository[domain.Campaign]
}

// newSQLCampaignRepository creates a new repository for campaign data.
func newSQLCampaignRepository(db DBTX, driver database.Driver, rec metrics.Recorder) *SQLCampaignRepository {
	return &SQLCampaignRepository{crudRepository[domain.Campaign]{
		BaseRepository: newBaseRepository(db, driver, rec, "campaign"),
		spec: tableSpec[domain.Campaign]{
			name:    "campaign",
			columns: []string{"campaign_code", "name", "description", "start_date", "end_date", "status", "goal"},
			values:  campaignValues,
			scan:    scanCampaign,
			orderBy: "name, id",
		},
	}}
}

// Ensure implementation matches interface
var _ portsrepo.CampaignRepositoryFacade = (*SQLCampaignRepository)(nil)

func campaignValues(c domain.Campaign) []any {
	m := mapping.ToModelCampaign(c)
	return []any{m.CampaignCode, m.Name, m.Description, m.StartDate, m.EndDate, m.Status, m.Goal}
}

func scanCampaign(row rowScanner) (domain.Campaign, error) {
	var m models.Campaign
	err := row.Scan(
		&m.ID, &m.UUID,
		&m.CampaignCode, &m.Name, &m.Description, &m.StartDate, &m.EndDate, &m.Status, &m.Goal,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return mapping.ToDomainCampaign(m), err
}

// SearchByText matches name, code or description. Blank text returns every campaign.
func (r *SQLCampaignRepository) SearchByText(ctx context.Context, text string) (_ []domain.Campaign, err error) {
	defer r.track(ctx, "search_by_text", time.Now(), &err)
	if strings.TrimSpace(text) == "" {
		return r.list(ctx, "", "")
	}
	pattern := likePattern(text)
	return r.list(ctx,
		`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(campaign_code) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`,
		"",
		pattern, pattern, pattern,
	)
}
