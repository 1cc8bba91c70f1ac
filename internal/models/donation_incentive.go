package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// DonationIncentive mirrors a row of the donation_incentive table.
type DonationIncentive struct {
	ID           int64           `db:"id"`
	UUID         string          `db:"uuid"`
	Name         string          `db:"name"`
	Description  sql.NullString  `db:"description"`
	DollarAmount decimal.Decimal `db:"dollar_amount"`
	Status       string          `db:"status"`
	AuditFields
}
