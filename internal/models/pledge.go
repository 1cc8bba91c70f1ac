package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Pledge mirrors a row of the pledge table.
type Pledge struct {
	ID                      int64           `db:"id"`
	UUID                    string          `db:"uuid"`
	DonorID                 sql.NullInt64   `db:"donor_id"`
	CampaignID              sql.NullInt64   `db:"campaign_id"`
	PledgeAmount            decimal.Decimal `db:"pledge_amount"`
	Status                  string          `db:"status"`
	ExpectedFulfillmentDate time.Time       `db:"expected_fulfillment_date"`
	PrayerNote              sql.NullString  `db:"prayer_note"`
	Notes                   sql.NullString  `db:"notes"`
	AuditFields
}
