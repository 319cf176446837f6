package taskguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPermissionDescription tests the role-keyed summaries
func TestPermissionDescription(t *testing.T) {
	owner := User{ID: "1", Role: RoleOwner, OrganizationID: "org_1"}
	admin := User{ID: "2", Role: RoleAdmin, OrganizationID: "org_1"}
	viewer := User{ID: "3", Role: RoleViewer, OrganizationID: "org_1"}

	ownerDesc := PermissionDescription(owner)
	assert.Contains(t, ownerDesc, "Owner:")
	assert.Contains(t, ownerDesc, "org_1")
	assert.Contains(t, ownerDesc, "deletion")

	adminDesc := PermissionDescription(admin)
	assert.Contains(t, adminDesc, "Admin:")
	assert.Contains(t, adminDesc, "org_1")
	assert.Contains(t, adminDesc, "Cannot delete")

	viewerDesc := PermissionDescription(viewer)
	assert.Contains(t, viewerDesc, "Viewer:")
	assert.Contains(t, viewerDesc, "org_1")
	assert.Contains(t, viewerDesc, "their own tasks")

	// Each role gets a distinct sentence
	assert.NotEqual(t, ownerDesc, adminDesc)
	assert.NotEqual(t, adminDesc, viewerDesc)
}

// TestPermissionDescriptionUnknownRole tests the fixed fallback
func TestPermissionDescriptionUnknownRole(t *testing.T) {
	stranger := User{ID: "9", Role: Role("GUEST"), OrganizationID: "org_1"}
	assert.Equal(t, "Unknown role: No permissions.", PermissionDescription(stranger))

	empty := User{ID: "9", OrganizationID: "org_1"}
	assert.Equal(t, "Unknown role: No permissions.", PermissionDescription(empty))
}
