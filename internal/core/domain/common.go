package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity carries the storage-assigned row id and the application-assigned uuid.
// ID is zero until the first successful insert.
type Identity struct {
	ID   int64  `json:"id"`
	UUID string `json:"uuid"`
}

// NewIdentity returns an unsaved identity with a fresh uuid.
func NewIdentity() Identity {
	return Identity{UUID: uuid.NewString()}
}

// RecordID returns the storage id, or 0 when the entity was never inserted.
func (i Identity) RecordID() int64 {
	return i.ID
}

// RecordUUID returns the application-assigned uuid.
func (i Identity) RecordUUID() string {
	return i.UUID
}

// IsPersisted reports whether storage has assigned an id.
func (i Identity) IsPersisted() bool {
	return i.ID != 0
}

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAuditFields stamps both timestamps with now.
func NewAuditFields(now time.Time) AuditFields {
	return AuditFields{CreatedAt: now, UpdatedAt: now}
}

// Audit returns the audit fields; promoted to every entity embedding AuditFields.
func (a AuditFields) Audit() AuditFields {
	return a
}

// Int64Ptr is a helper for optional references.
func Int64Ptr(v int64) *int64 {
	return &v
}

// SameRef reports whether two optional references point at the same id.
func SameRef(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
