package taskguard

import "fmt"

// Operation identifies a per-task access check in ValidateTaskAccess.
type Operation string

const (
	OperationRead   Operation = "read"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"

	// OperationCreate is not a per-task operation (a task being created has
	// no scope yet); it appears in audit entries and middleware only.
	OperationCreate Operation = "create"
)

// String returns the operation as its wire value.
func (o Operation) String() string {
	return string(o)
}

// RequireRole fails when the user's role ranks below requiredRole. The
// operationLabel names what was attempted and appears in the error message.
// On success there is no observable effect.
//
// Example:
//
//	if err := taskguard.RequireRole(user, taskguard.RoleAdmin, "task creation"); err != nil {
//	    return err // 403 at the boundary
//	}
func RequireRole(user User, requiredRole Role, operationLabel string) error {
	if HasRoleOrHigher(user, requiredRole) {
		return nil
	}
	return NewError(ErrInsufficientRole,
		fmt.Sprintf("Insufficient permissions: %s requires %s role or higher. Current role: %s",
			operationLabel, requiredRole, user.Role)).
		WithUser(user)
}

// ValidateTaskAccess re-derives the predicate for the operation and, on
// failure, returns an error naming the specific cause. Causes are checked
// in priority order: the organization boundary first, then the role rule
// for the operation, then a generic denial. An operation outside
// read/update/delete is a programming error and fails with
// ErrUnknownOperation.
//
// On success there is no return value and no side effect.
func ValidateTaskAccess(user User, task Task, operation Operation) error {
	switch operation {
	case OperationRead:
		if CanReadTasks(user, &task) {
			return nil
		}
		return NewError(ErrDifferentOrganization,
			"Cannot read task: task belongs to a different organization").
			WithOperation(OperationRead).
			WithTask(task.ID).
			WithUser(user)

	case OperationUpdate:
		if CanUpdateTask(user, task) {
			return nil
		}
		if !IsSameOrganization(user, task.OrganizationID) {
			return NewError(ErrDifferentOrganization,
				"Cannot update task: task belongs to a different organization").
				WithOperation(OperationUpdate).
				WithTask(task.ID).
				WithUser(user)
		}
		if IsViewer(user) {
			return NewError(ErrNotTaskCreator,
				"Cannot update task: viewers can only update their own tasks").
				WithOperation(OperationUpdate).
				WithTask(task.ID).
				WithUser(user)
		}
		return NewError(ErrInsufficientRole,
			"Insufficient permissions to update this task").
			WithOperation(OperationUpdate).
			WithTask(task.ID).
			WithUser(user)

	case OperationDelete:
		if CanDeleteTask(user, task) {
			return nil
		}
		if !IsSameOrganization(user, task.OrganizationID) {
			return NewError(ErrDifferentOrganization,
				"Cannot delete task: task belongs to a different organization").
				WithOperation(OperationDelete).
				WithTask(task.ID).
				WithUser(user)
		}
		if user.Role.Valid() {
			return NewError(ErrInsufficientRole,
				"Cannot delete task: only owners can delete tasks").
				WithOperation(OperationDelete).
				WithTask(task.ID).
				WithUser(user)
		}
		return NewError(ErrInsufficientRole,
			"Insufficient permissions to delete this task").
			WithOperation(OperationDelete).
			WithTask(task.ID).
			WithUser(user)

	default:
		return NewError(ErrUnknownOperation,
			fmt.Sprintf("Unknown operation: %s", operation)).
			WithOperation(operation).
			WithTask(task.ID).
			WithUser(user)
	}
}
