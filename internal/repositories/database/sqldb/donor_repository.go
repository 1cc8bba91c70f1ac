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

type SQLDonorRepository struct {
	crudRepository[domain.Donor]
}

// newSQLDonorRepository creates a new repository for donor data.
func newSQLDonorRepository(db DBTX, driver database.Driver, rec metrics.Recorder) *SQLDonorRepository {
	return &SQLDonorRepository{crudRepository[domain.Donor]{
		BaseRepository: newBaseRepository(db, driver, rec, "donor"),
		spec: tableSpec[domain.Donor]{
			name: "donor",
			columns: []string{
				"company", "salutation", "first_name", "last_name", "jewish_name",
				"address", "addl_line", "suite", "city", "state", "zip",
				"email", "phone", "donor_source", "notes",
			},
			values:  donorValues,
			scan:    scanDonor,
			orderBy: "last_name, first_name, id",
		},
	}}
}

// Ensure implementation matches interface
var _ portsrepo.DonorRepositoryFacade = (*SQLDonorRepository)(nil)

func donorValues(d domain.Donor) []any {
	m := mapping.ToModelDonor(d)
	return []any{
		m.Company, m.Salutation, m.FirstName, m.LastName, m.JewishName,
		m.Address, m.AddlLine, m.Suite, m.City, m.State, m.Zip,
		m.Email, m.Phone, m.DonorSource, m.Notes,
	}
}

func scanDonor(row rowScanner) (domain.Donor, error) {
	var m models.Donor
	err := row.Scan(
		&m.ID, &m.UUID,
		&m.Company, &m.Salutation, &m.FirstName, &m.LastName, &m.JewishName,
		&m.Address, &m.AddlLine, &m.Suite, &m.City, &m.State, &m.Zip,
		&m.Email, &m.Phone, &m.DonorSource, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return mapping.ToDomainDonor(m), err
}

// FindByName matches first name, last name or company.
// Blank text returns every donor.
func (r *SQLDonorRepository) FindByName(ctx context.Context, text string) (_ []domain.Donor, err error) {
	defer r.track(ctx, "find_by_name", time.Now(), &err)
	if strings.TrimSpace(text) == "" {
		return r.list(ctx, "", "")
	}
	pattern := likePattern(text)
	return r.list(ctx,
		`LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(company) LIKE ? ESCAPE '\'`,
		"",
		pattern, pattern, pattern,
	)
}
