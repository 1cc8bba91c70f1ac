package sqldb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/donation_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/donation_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/donation_tracker/internal/models"
	"github.com/SscSPs/donation_tracker/internal/platform/metrics"
	"github.com/SscSPs/donation_tracker/internal/utils/mapping"
	"github.com/SscSPs/donation_tracker/pkg/database"
)

type SQLDonationIncentiveRepository struct {
	crudRepository[domain.DonationIncentive]
}

// newSQLDonationIncentiveRepository creates a new repository for incentive data.
func newSQLDonationIncentiveRepository(db DBTX, driver database.Driver, rec metrics.Recorder) *SQLDonationIncentiveRepository {
	return &SQLDonationIncentiveRepository{crudRepository[domain.DonationIncentive]{
		BaseRepository: newBaseRepository(db, driver, rec, "donation_incentive"),
		spec: tableSpec[domain.DonationIncentive]{
			name:    "donation_incentive",
			columns: []string{"name", "description", "dollar_amount", "status"},
			values:  incentiveValues,
			scan:    scanIncentive,
			orderBy: "name, id",
		},
	}}
}

// Ensure implementation matches interface
var _ portsrepo.DonationIncentiveRepositoryFacade = (*SQLDonationIncentiveRepository)(nil)

func incentiveValues(i domain.DonationIncentive) []any {
	m := mapping.ToModelDonationIncentive(i)
	return []any{m.Name, m.Description, m.DollarAmount, m.Status}
}

func scanIncentive(row rowScanner) (domain.DonationIncentive, error) {
	var m models.DonationIncentive
	err := row.Scan(
		&m.ID, &m.UUID,
		&m.Name, &m.Description, &m.DollarAmount, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return mapping.ToDomainDonationIncentive(m), err
}

// FindByName matches the incentive name. Blank text returns every incentive.
func (r *SQLDonationIncentiveRepository) FindByName(ctx context.Context, text string) (_ []domain.DonationIncentive, err error) {
	defer r.track(ctx, "find_by_name", time.Now(), &err)
	if strings.TrimSpace(text) == "" {
		return r.list(ctx, "", "")
	}
	return r.list(ctx, `LOWER(name) LIKE ? ESCAPE '\'`, "", likePattern(text))
}

// IsIncentiveInUse reports whether any donation references the incentive.
func (r *SQLDonationIncentiveRepository) IsIncentiveInUse(ctx context.Context, id int64) (_ bool, err error) {
	defer r.track(ctx, "is_in_use", time.Now(), &err)
	var n int
	query := r.rebind(`SELECT COUNT(*) FROM donation WHERE donation_incentive_id = ?`)
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check donations for incentive %d: %w", id, err)
	}
	return n > 0, nil
}
