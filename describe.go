package taskguard

import "fmt"

// PermissionDescription returns a human-readable summary of the user's
// permission set. It is presentational only and never used for enforcement.
//
// Example:
//
//	taskguard.PermissionDescription(owner)
//	// "Owner: Full access to all tasks in organization org_1, including deletion."
func PermissionDescription(user User) string {
	switch user.Role {
	case RoleOwner:
		return fmt.Sprintf("Owner: Full access to all tasks in organization %s, including deletion.", user.OrganizationID)
	case RoleAdmin:
		return fmt.Sprintf("Admin: Can create, read and update all tasks in organization %s, and view the audit log. Cannot delete tasks.", user.OrganizationID)
	case RoleViewer:
		return fmt.Sprintf("Viewer: Can read all tasks in organization %s and update only their own tasks.", user.OrganizationID)
	default:
		return "Unknown role: No permissions."
	}
}
