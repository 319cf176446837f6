package taskguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequireRole tests the one-shot role gate and its message contract
func TestRequireRole(t *testing.T) {
	owner, admin, viewer := testUsers()

	t.Run("Sufficient role has no effect", func(t *testing.T) {
		assert.NoError(t, RequireRole(owner, RoleOwner, "task deletion"))
		assert.NoError(t, RequireRole(owner, RoleViewer, "task listing"))
		assert.NoError(t, RequireRole(admin, RoleAdmin, "task creation"))
	})

	t.Run("Insufficient role fails with full message", func(t *testing.T) {
		err := RequireRole(admin, RoleOwner, "x")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientRole)

		// The message text is part of the contract
		assert.Contains(t, err.Error(), "Insufficient permissions")
		assert.Contains(t, err.Error(), "x")
		assert.Contains(t, err.Error(), "OWNER")
		assert.Contains(t, err.Error(), "ADMIN")
		assert.Contains(t, err.Error(), "x requires OWNER role or higher. Current role: ADMIN")
	})

	t.Run("Viewer below admin", func(t *testing.T) {
		err := RequireRole(viewer, RoleAdmin, "task creation")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "task creation requires ADMIN role or higher. Current role: VIEWER")
	})
}

// TestValidateTaskAccessRead tests read validation causes
func TestValidateTaskAccessRead(t *testing.T) {
	owner, _, viewer := testUsers()

	sameOrg := Task{ID: "t1", CreatedByUserID: "1", OrganizationID: "1"}
	foreign := Task{ID: "t2", CreatedByUserID: "9", OrganizationID: "2"}

	assert.NoError(t, ValidateTaskAccess(owner, sameOrg, OperationRead))
	assert.NoError(t, ValidateTaskAccess(viewer, sameOrg, OperationRead))

	err := ValidateTaskAccess(owner, foreign, OperationRead)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDifferentOrganization)
	assert.Contains(t, err.Error(), "different organization")
}

// TestValidateTaskAccessUpdate tests update causes in priority order
func TestValidateTaskAccessUpdate(t *testing.T) {
	_, admin, viewer := testUsers()

	othersTask := Task{ID: "t1", CreatedByUserID: "1", OrganizationID: "1"}
	ownTask := Task{ID: "t2", CreatedByUserID: "3", OrganizationID: "1"}
	foreign := Task{ID: "t3", CreatedByUserID: "3", OrganizationID: "2"}

	assert.NoError(t, ValidateTaskAccess(admin, othersTask, OperationUpdate))
	assert.NoError(t, ValidateTaskAccess(viewer, ownTask, OperationUpdate))

	t.Run("Cross-org wins over role cause", func(t *testing.T) {
		// The viewer also fails the creator rule here, but the organization
		// boundary is reported first
		err := ValidateTaskAccess(viewer, foreign, OperationUpdate)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDifferentOrganization)
		assert.Contains(t, err.Error(), "different organization")
	})

	t.Run("Viewer not creator", func(t *testing.T) {
		err := ValidateTaskAccess(viewer, othersTask, OperationUpdate)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotTaskCreator)
		assert.Contains(t, err.Error(), "viewers can only update their own tasks")
	})

	t.Run("Generic insufficient permissions", func(t *testing.T) {
		stranger := User{ID: "u9", Role: Role("GUEST"), OrganizationID: "1"}
		err := ValidateTaskAccess(stranger, othersTask, OperationUpdate)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientRole)
		assert.Contains(t, err.Error(), "Insufficient permissions")
	})
}

// TestValidateTaskAccessDelete tests delete causes in priority order
func TestValidateTaskAccessDelete(t *testing.T) {
	owner, admin, viewer := testUsers()

	task := Task{ID: "t1", CreatedByUserID: "1", OrganizationID: "1"}
	foreign := Task{ID: "t2", CreatedByUserID: "1", OrganizationID: "2"}

	assert.NoError(t, ValidateTaskAccess(owner, task, OperationDelete))

	t.Run("Cross-org first", func(t *testing.T) {
		err := ValidateTaskAccess(owner, foreign, OperationDelete)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDifferentOrganization)
		assert.Contains(t, err.Error(), "different organization")
	})

	t.Run("Owner-only for admin", func(t *testing.T) {
		err := ValidateTaskAccess(admin, task, OperationDelete)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientRole)
		assert.Contains(t, err.Error(), "only owners can delete")
	})

	t.Run("Owner-only for viewer", func(t *testing.T) {
		err := ValidateTaskAccess(viewer, task, OperationDelete)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only owners can delete")
	})

	t.Run("Generic for unknown role", func(t *testing.T) {
		stranger := User{ID: "u9", Role: Role("GUEST"), OrganizationID: "1"}
		err := ValidateTaskAccess(stranger, task, OperationDelete)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientRole)
		assert.Contains(t, err.Error(), "Insufficient permissions")
	})
}

// TestValidateTaskAccessUnknownOperation tests the programming-error path
func TestValidateTaskAccessUnknownOperation(t *testing.T) {
	owner, _, _ := testUsers()
	task := Task{ID: "t1", CreatedByUserID: "1", OrganizationID: "1"}

	err := ValidateTaskAccess(owner, task, Operation("archive"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "Unknown operation: archive")

	// Not a denial: surfaced as a defect, not a 403-class error
	assert.False(t, IsPermissionDenied(err))

	// Create is not a per-task operation either
	err = ValidateTaskAccess(owner, task, OperationCreate)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

// TestValidateTaskAccessErrorContext tests the attached decision context
func TestValidateTaskAccessErrorContext(t *testing.T) {
	_, admin, _ := testUsers()
	task := Task{ID: "t1", CreatedByUserID: "1", OrganizationID: "1"}

	err := ValidateTaskAccess(admin, task, OperationDelete)
	require.Error(t, err)

	var guardErr *Error
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, OperationDelete, guardErr.Operation)
	assert.Equal(t, "t1", guardErr.TaskID)
	assert.Equal(t, "2", guardErr.UserID)
	assert.Equal(t, RoleAdmin, guardErr.Role)
}
