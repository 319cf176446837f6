package taskguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckerNewChecker tests the checker constructor
func TestCheckerNewChecker(t *testing.T) {
	user := User{ID: "u1", Role: RoleAdmin, OrganizationID: "org1"}
	checker := NewChecker(user)

	require.NotNil(t, checker)
	assert.Equal(t, user, checker.User())
}

// TestCheckerPredicates tests that checker methods mirror the predicates
func TestCheckerPredicates(t *testing.T) {
	owner, admin, viewer := testUsers()
	task := Task{ID: "t1", CreatedByUserID: "1", OrganizationID: "1"}
	foreign := Task{ID: "t2", CreatedByUserID: "1", OrganizationID: "2"}

	ownerChecker := NewChecker(owner)
	adminChecker := NewChecker(admin)
	viewerChecker := NewChecker(viewer)

	assert.True(t, ownerChecker.CanRead(nil))
	assert.True(t, ownerChecker.CanRead(&task))
	assert.False(t, ownerChecker.CanRead(&foreign))

	assert.True(t, adminChecker.CanCreate())
	assert.False(t, viewerChecker.CanCreate())

	assert.True(t, adminChecker.CanUpdate(task))
	assert.False(t, viewerChecker.CanUpdate(task))

	assert.True(t, ownerChecker.CanDelete(task))
	assert.False(t, adminChecker.CanDelete(task))

	assert.True(t, adminChecker.CanViewAuditLog())
	assert.False(t, viewerChecker.CanViewAuditLog())

	assert.True(t, ownerChecker.HasRoleOrHigher(RoleAdmin))
	assert.False(t, viewerChecker.HasRoleOrHigher(RoleAdmin))
}

// TestCheckerValidate tests the validation passthrough
func TestCheckerValidate(t *testing.T) {
	_, admin, _ := testUsers()
	task := Task{ID: "t1", CreatedByUserID: "1", OrganizationID: "1"}

	checker := NewChecker(admin)

	assert.NoError(t, checker.Validate(task, OperationUpdate))

	err := checker.Validate(task, OperationDelete)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientRole)
}

// TestCheckerScopes tests the scope accessors
func TestCheckerScopes(t *testing.T) {
	viewer := User{ID: "u3", Role: RoleViewer, OrganizationID: "org1"}
	checker := NewChecker(viewer)

	assert.Equal(t, ScopeForTasks(viewer), checker.TaskScope())
	assert.Equal(t, ScopeForOwnTasks(viewer), checker.OwnTaskScope())
	assert.True(t, checker.OwnTaskScope().RestrictsCreator())
}

// TestCheckerDescribe tests the description passthrough
func TestCheckerDescribe(t *testing.T) {
	owner, _, _ := testUsers()
	checker := NewChecker(owner)
	assert.Equal(t, PermissionDescription(owner), checker.Describe())
}
