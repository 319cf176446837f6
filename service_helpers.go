package taskguard

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fernandezvara/dbkit"
)

// ============================================================================
// INTERNAL HELPERS
// ============================================================================

func (s *Service) getTaskByID(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	err := dbkit.WithErr1(s.db.NewSelect().Model(&task).Where("id = ?", taskID).Limit(1).Scan(ctx), "GetTaskByID").Err()
	if err != nil {
		if dbkit.IsNotFound(err) || errors.Is(err, sql.ErrNoRows) {
			return nil, NewError(ErrTaskNotFound, "task not found").WithTask(taskID)
		}
		return nil, err
	}
	return &task, nil
}

// logDecision records the outcome of an access decision in the audit log.
// Denials that are plain defects (unknown operation) or storage faults are
// not decisions and are not logged. Logging is best effort: a failed insert
// never turns a permitted operation into a failure.
func (s *Service) logDecision(ctx context.Context, user User, operation Operation, taskID string, decision error) {
	if decision != nil && !IsPermissionDenied(decision) {
		return
	}

	audit := GetAuditContext(ctx)
	entry := &AccessEntry{
		ActorID:        user.ID,
		ActorRole:      user.Role,
		OrganizationID: user.OrganizationID,
		Operation:      operation,
		TaskID:         taskID,
		Allowed:        decision == nil,
		IPAddress:      audit.IPAddress,
		UserAgent:      audit.UserAgent,
		RequestID:      audit.RequestID,
	}
	if decision != nil {
		entry.Reason = decision.Error()
	}

	_, err := s.db.NewInsert().Model(entry.ToModel()).Exec(ctx)
	_ = dbkit.WithErr1(err, "LogAccessDecision").Err()
}

// GetTransactionMetrics returns the current transaction performance metrics.
func (s *Service) GetTransactionMetrics() TransactionMetrics {
	return s.txMonitor.getMetrics()
}

// ResetTransactionMetrics resets all transaction metrics.
func (s *Service) ResetTransactionMetrics() {
	s.txMonitor.reset()
}

// IsTransactionHealthy checks if transaction performance is within acceptable thresholds.
func (s *Service) IsTransactionHealthy() bool {
	metrics := s.txMonitor.getMetrics()

	// If we have very few transactions, consider it healthy
	if metrics.TotalTransactions < 10 {
		return true
	}

	// Check failure rate (should be less than 5%)
	failureRate := float64(metrics.FailedTransactions) / float64(metrics.TotalTransactions)
	if failureRate > 0.05 {
		return false
	}

	// Check average duration (should be less than 1 second)
	if metrics.AverageDuration > time.Second {
		return false
	}

	return true
}
