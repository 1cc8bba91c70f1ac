package models

import "database/sql"

// Donor mirrors a row of the donor table. Optional text columns are NULL when empty.
type Donor struct {
	ID          int64          `db:"id"`
	UUID        string         `db:"uuid"`
	Company     sql.NullString `db:"company"`
	Salutation  sql.NullString `db:"salutation"`
	FirstName   sql.NullString `db:"first_name"`
	LastName    sql.NullString `db:"last_name"`
	JewishName  sql.NullString `db:"jewish_name"`
	Address     sql.NullString `db:"address"`
	AddlLine    sql.NullString `db:"addl_line"`
	Suite       sql.NullString `db:"suite"`
	City        sql.NullString `db:"city"`
	State       sql.NullString `db:"state"`
	Zip         sql.NullString `db:"zip"`
	Email       sql.NullString `db:"email"`
	Phone       sql.NullString `db:"phone"`
	DonorSource sql.NullString `db:"donor_source"`
	Notes       sql.NullString `db:"notes"`
	AuditFields
}
