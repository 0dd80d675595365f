package models

import "time"

// AuditFields mirrors the audit columns shared by admin-managed tables.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
