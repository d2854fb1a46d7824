package domain

import "time"

// AuditEvent records who performed which action on which entity.
type AuditEvent struct {
	Actor     string
	Action    string
	Entity    string
	EntityID  string
	Timestamp time.Time
}
