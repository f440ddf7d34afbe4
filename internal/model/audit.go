package model

import (
	"encoding/json"
	"time"
)

// AuditLog is one change-log row for an entity. Category and severity are
// optional on the row; actor references may be an admin id, a host id or an
// embedded free-form user name, populated in that priority order.
type AuditLog struct {
	ID         int64
	EntityType string
	EntityID   int64
	Action     string
	Category   *string
	Severity   *string
	AdminID    *int64
	HostID     *int64
	UserName   *string
	OldValues  json.RawMessage
	NewValues  json.RawMessage
	Metadata   json.RawMessage
	CreatedAt  time.Time
}
