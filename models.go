package taskguard

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the authenticated subject of every policy decision. It is created
// by the identity layer and trusted as-is; TaskGuard only reads it.
type User struct {
	ID             string
	Email          string
	Role           Role
	OrganizationID string
}

// Task is the protected resource. The policy layer reads only
// OrganizationID and CreatedByUserID; everything else is payload owned by
// the surrounding application.
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID              string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Title           string    `bun:"title,notnull"`
	Description     string    `bun:"description"`
	Status          string    `bun:"status,notnull,default:'open'"`
	CreatedByUserID string    `bun:"created_by_user_id,notnull"`
	OrganizationID  string    `bun:"organization_id,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// AccessAuditLog records every access decision the Service made on a task
// mutation, for compliance and debugging.
type AccessAuditLog struct {
	bun.BaseModel `bun:"table:access_audit_log,alias:aal"`

	ID        string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Timestamp time.Time `bun:"timestamp,notnull,default:current_timestamp"`

	// Who attempted the operation
	ActorID        string `bun:"actor_id,notnull"`
	ActorRole      string `bun:"actor_role,notnull"`
	OrganizationID string `bun:"organization_id,notnull"`

	// What was attempted and on which task
	Operation string `bun:"operation,notnull"` // "read", "create", "update", "delete"
	TaskID    string `bun:"task_id"`

	// Outcome
	Allowed bool   `bun:"allowed,notnull"`
	Reason  string `bun:"reason"` // cause on denial, empty on success

	// Request metadata for forensics
	IPAddress string `bun:"ip_address"`
	UserAgent string `bun:"user_agent"`
	RequestID string `bun:"request_id"`
}

// AccessEntry is used to create new access audit log entries.
type AccessEntry struct {
	ActorID        string
	ActorRole      Role
	OrganizationID string
	Operation      Operation
	TaskID         string
	Allowed        bool
	Reason         string
	IPAddress      string
	UserAgent      string
	RequestID      string
}

// ToModel converts an AccessEntry to an AccessAuditLog model.
func (e *AccessEntry) ToModel() *AccessAuditLog {
	return &AccessAuditLog{
		ActorID:        e.ActorID,
		ActorRole:      string(e.ActorRole),
		OrganizationID: e.OrganizationID,
		Operation:      string(e.Operation),
		TaskID:         e.TaskID,
		Allowed:        e.Allowed,
		Reason:         e.Reason,
		IPAddress:      e.IPAddress,
		UserAgent:      e.UserAgent,
		RequestID:      e.RequestID,
		Timestamp:      time.Now(),
	}
}
