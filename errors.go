package taskguard

import (
	"errors"
	"fmt"
)

// Sentinel errors for TaskGuard decisions. Callers branch on these kinds
// with errors.Is rather than matching message text.
var (
	// ErrDifferentOrganization is returned when a user touches a task that
	// belongs to another organization.
	ErrDifferentOrganization = errors.New("taskguard: different organization")

	// ErrInsufficientRole is returned when the user's role ranks below what
	// the operation requires.
	ErrInsufficientRole = errors.New("taskguard: insufficient role")

	// ErrNotTaskCreator is returned when a viewer updates a task they did
	// not create.
	ErrNotTaskCreator = errors.New("taskguard: not task creator")

	// ErrUnknownOperation is returned for an operation value outside
	// read/update/delete. This is a programming error, not a denial.
	ErrUnknownOperation = errors.New("taskguard: unknown operation")

	// ErrUnknownRole is returned when a role string is outside the closed
	// enum.
	ErrUnknownRole = errors.New("taskguard: unknown role")

	// ErrNoUser is returned when no user is found in context.
	ErrNoUser = errors.New("taskguard: no user in context")

	// ErrTaskNotFound is returned when a task does not exist or is not
	// visible inside the user's organization.
	ErrTaskNotFound = errors.New("taskguard: task not found")

	// ErrDatabaseError is returned when a database operation fails.
	ErrDatabaseError = errors.New("taskguard: database error")
)

// Error wraps a sentinel error with additional context.
type Error struct {
	Err       error     // Underlying sentinel error
	Message   string    // Additional context
	Operation Operation // Operation involved (if applicable)
	TaskID    string    // Task involved (if applicable)
	UserID    string    // User involved (if applicable)
	Role      Role      // User's role at decision time (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithOperation adds the operation to the error.
func (e *Error) WithOperation(op Operation) *Error {
	e.Operation = op
	return e
}

// WithTask adds the task ID to the error.
func (e *Error) WithTask(taskID string) *Error {
	e.TaskID = taskID
	return e
}

// WithUser adds user information to the error.
func (e *Error) WithUser(user User) *Error {
	e.UserID = user.ID
	e.Role = user.Role
	return e
}

// IsPermissionDenied checks if an error is any authorization denial
// (cross-organization, insufficient role, or not-creator).
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrDifferentOrganization) ||
		errors.Is(err, ErrInsufficientRole) ||
		errors.Is(err, ErrNotTaskCreator)
}

// IsDifferentOrganization checks if an error is a cross-organization denial.
func IsDifferentOrganization(err error) bool {
	return errors.Is(err, ErrDifferentOrganization)
}

// IsInsufficientRole checks if an error is an insufficient-role denial.
func IsInsufficientRole(err error) bool {
	return errors.Is(err, ErrInsufficientRole)
}

// IsUnknownOperation checks if an error is an unknown-operation defect.
func IsUnknownOperation(err error) bool {
	return errors.Is(err, ErrUnknownOperation)
}

// IsTaskNotFound checks if an error is a missing-task error.
func IsTaskNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound)
}
