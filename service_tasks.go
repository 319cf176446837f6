package taskguard

import (
	"context"
	"time"

	"github.com/fernandezvara/dbkit"
)

// ============================================================================
// TASK OPERATIONS
// ============================================================================

// ListTasks retrieves all tasks visible to the user. Visibility is
// organization-wide for every role, so this applies ScopeForTasks.
//
// Example:
//
//	tasks, err := service.ListTasks(ctx, user)
func (s *Service) ListTasks(ctx context.Context, user User) ([]Task, error) {
	var tasks []Task
	q := s.db.NewSelect().Model(&tasks).Apply(ScopeForTasks(user).Apply).Order("created_at DESC")
	err := dbkit.WithErr1(q.Scan(ctx), "ListTasks").Err()
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListOwnTasks retrieves the user's own tasks. For a VIEWER that is the
// tasks they created; ADMIN and OWNER get the whole organization.
func (s *Service) ListOwnTasks(ctx context.Context, user User) ([]Task, error) {
	var tasks []Task
	q := s.db.NewSelect().Model(&tasks).Apply(ScopeForOwnTasks(user).Apply).Order("created_at DESC")
	err := dbkit.WithErr1(q.Scan(ctx), "ListOwnTasks").Err()
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountTasks returns the number of tasks visible to the user.
func (s *Service) CountTasks(ctx context.Context, user User) (int, error) {
	count, err := s.db.NewSelect().Model((*Task)(nil)).Apply(ScopeForTasks(user).Apply).Count(ctx)
	if err != nil {
		return 0, dbkit.WithErr1(err, "CountTasks").Err()
	}
	return count, nil
}

// GetTask retrieves a single task after validating read access. A task in
// another organization is reported as not found rather than revealing its
// existence.
func (s *Service) GetTask(ctx context.Context, user User, taskID string) (*Task, error) {
	task, err := s.getTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := ValidateTaskAccess(user, *task, OperationRead); err != nil {
		s.logDecision(ctx, user, OperationRead, taskID, err)
		return nil, NewError(ErrTaskNotFound, "task not found").
			WithOperation(OperationRead).
			WithTask(taskID).
			WithUser(user)
	}

	return task, nil
}

// CreateTask creates a task on behalf of the user. Requires ADMIN or
// higher. The task is always created inside the user's organization with
// the user as creator, regardless of what the input carries.
//
// Example:
//
//	task := &taskguard.Task{Title: "Ship release"}
//	err := service.CreateTask(ctx, user, task)
func (s *Service) CreateTask(ctx context.Context, user User, task *Task) error {
	if !CanCreateTask(user) {
		err := RequireRole(user, RoleAdmin, "task creation")
		s.logDecision(ctx, user, OperationCreate, "", err)
		return err
	}

	task.CreatedByUserID = user.ID
	task.OrganizationID = user.OrganizationID
	if task.Status == "" {
		task.Status = "open"
	}

	result, err := s.db.NewInsert().Model(task).Exec(ctx)
	err = dbkit.WithErr(result, err, "CreateTask").Err()
	if err != nil {
		return NewError(ErrDatabaseError, "failed to create task").
			WithOperation(OperationCreate).
			WithUser(user)
	}

	s.logDecision(ctx, user, OperationCreate, task.ID, nil)
	return nil
}

// UpdateTask updates a task's mutable fields on behalf of the user. The
// stored task is loaded and validated inside a transaction so the policy
// decision and the write see the same row.
func (s *Service) UpdateTask(ctx context.Context, user User, task *Task) error {
	err := s.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.getTaskByID(ctx, task.ID)
		if err != nil {
			return err
		}

		if err := ValidateTaskAccess(user, *existing, OperationUpdate); err != nil {
			return err
		}

		task.UpdatedAt = time.Now()
		result, err := s.db.NewUpdate().Model(task).
			Column("title", "description", "status", "updated_at").
			WherePK().
			Exec(ctx)
		err = dbkit.WithErr(result, err, "UpdateTask").Err()
		if err != nil {
			return NewError(ErrDatabaseError, "failed to update task").
				WithOperation(OperationUpdate).
				WithTask(task.ID).
				WithUser(user)
		}
		return nil
	})

	s.logDecision(ctx, user, OperationUpdate, task.ID, err)
	return err
}

// DeleteTask deletes a task on behalf of the user. OWNER only.
func (s *Service) DeleteTask(ctx context.Context, user User, taskID string) error {
	err := s.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.getTaskByID(ctx, taskID)
		if err != nil {
			return err
		}

		if err := ValidateTaskAccess(user, *existing, OperationDelete); err != nil {
			return err
		}

		result, err := s.db.NewDelete().Model((*Task)(nil)).Where("id = ?", taskID).Exec(ctx)
		err = dbkit.WithErr(result, err, "DeleteTask").Err()
		if err != nil {
			return NewError(ErrDatabaseError, "failed to delete task").
				WithOperation(OperationDelete).
				WithTask(taskID).
				WithUser(user)
		}
		return nil
	})

	s.logDecision(ctx, user, OperationDelete, taskID, err)
	return err
}
