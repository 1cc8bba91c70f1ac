package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Campaign mirrors a row of the campaign table.
type Campaign struct {
	ID           int64               `db:"id"`
	UUID         string              `db:"uuid"`
	CampaignCode string              `db:"campaign_code"`
	Name         string              `db:"name"`
	Description  sql.NullString      `db:"description"`
	StartDate    sql.NullTime        `db:"start_date"`
	EndDate      sql.NullTime        `db:"end_date"`
	Status       string              `db:"status"`
	Goal         decimal.NullDecimal `db:"goal"`
	AuditFields
}
