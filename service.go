package taskguard

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// Service couples the policy layer to task storage. Every operation takes
// the acting user, enforces the relevant predicate before touching the
// database, and records the decision in the access audit log.
//
// Error Handling:
// All database operations use dbkit's chainable error wrapping to provide
// detailed context about failed operations. Policy denials come back as
// *Error values wrapping the taskguard sentinels, so callers can branch on
// the kind:
//
//	err := service.DeleteTask(ctx, user, taskID)
//	if taskguard.IsPermissionDenied(err) {
//	    // 403 at the HTTP boundary
//	}
//	if dbkit.IsNotFound(err) || taskguard.IsTaskNotFound(err) {
//	    // 404
//	}
type Service struct {
	db        dbkit.IDB
	txMonitor *transactionMonitor
}

// NewService creates a new TaskGuard service.
//
// Example:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	service := taskguard.NewService(db)
func NewService(db dbkit.IDB) *Service {
	return &Service{
		db:        db,
		txMonitor: newTransactionMonitor(),
	}
}

// ============================================================================
// ACCESS AUDIT LOG
// ============================================================================

// GetAccessLog retrieves access audit log entries with optional filters.
// The requesting user must be ADMIN or higher; results are always
// restricted to the user's own organization.
func (s *Service) GetAccessLog(ctx context.Context, user User, filter AccessLogFilter) ([]AccessAuditLog, error) {
	if !CanViewAuditLog(user) {
		return nil, RequireRole(user, RoleAdmin, "audit log access")
	}

	var logs []AccessAuditLog
	q := s.db.NewSelect().Model(&logs).
		Where("organization_id = ?", user.OrganizationID)
	if filter.ActorID != "" {
		q = q.Where("actor_id = ?", filter.ActorID)
	}
	if filter.TaskID != "" {
		q = q.Where("task_id = ?", filter.TaskID)
	}
	if filter.Operation != "" {
		q = q.Where("operation = ?", filter.Operation)
	}
	if filter.Allowed != nil {
		q = q.Where("allowed = ?", *filter.Allowed)
	}
	if !filter.Since.IsZero() {
		q = q.Where("timestamp >= ?", filter.Since)
	}
	if !filter.Until.IsZero() {
		q = q.Where("timestamp <= ?", filter.Until)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 100 // Default limit
	}
	q = q.Limit(limit)

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	q = q.Order("timestamp DESC")
	err := dbkit.WithErr1(q.Scan(ctx), "GetAccessLog").Err()
	if err != nil {
		return nil, err
	}

	return logs, nil
}
