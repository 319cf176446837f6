package taskguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScopeForTasks tests that read scope is organization-wide for every role
func TestScopeForTasks(t *testing.T) {
	for _, role := range Roles() {
		user := User{ID: "u1", Role: role, OrganizationID: "org1"}
		scope := ScopeForTasks(user)

		assert.Equal(t, "org1", scope.OrganizationID)
		// Never a creator constraint, not even for viewers
		assert.Empty(t, scope.CreatedByUserID)
		assert.False(t, scope.RestrictsCreator())
	}
}

// TestScopeForOwnTasks tests the viewer-only creator constraint
func TestScopeForOwnTasks(t *testing.T) {
	viewer := User{ID: "u3", Role: RoleViewer, OrganizationID: "org1"}
	scope := ScopeForOwnTasks(viewer)
	assert.Equal(t, "org1", scope.OrganizationID)
	assert.Equal(t, "u3", scope.CreatedByUserID)
	assert.True(t, scope.RestrictsCreator())

	for _, role := range []Role{RoleAdmin, RoleOwner} {
		user := User{ID: "u1", Role: role, OrganizationID: "org1"}
		scope := ScopeForOwnTasks(user)
		assert.Equal(t, "org1", scope.OrganizationID)
		assert.Empty(t, scope.CreatedByUserID, "%s should get organization-only scope", role)
	}
}

// TestScopeConditions tests the generic map translation
func TestScopeConditions(t *testing.T) {
	t.Run("Organization only", func(t *testing.T) {
		scope := TaskScope{OrganizationID: "org1"}
		conditions := scope.Conditions()

		require.Len(t, conditions, 1)
		assert.Equal(t, "org1", conditions["organization_id"])
	})

	t.Run("With creator constraint", func(t *testing.T) {
		scope := TaskScope{OrganizationID: "org1", CreatedByUserID: "u3"}
		conditions := scope.Conditions()

		require.Len(t, conditions, 2)
		assert.Equal(t, "org1", conditions["organization_id"])
		assert.Equal(t, "u3", conditions["created_by_user_id"])
	})
}
