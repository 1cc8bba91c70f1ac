package models

import "time"

// AuditFields holds the audit columns shared by every table.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
