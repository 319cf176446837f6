package taskguard

// Predicates are the heart of the policy layer: pure, side-effect-free
// functions of their inputs. A false result is a normal outcome the caller
// branches on, never an error.

// CanReadTasks reports whether the user may read tasks. With a nil task it
// is a general capability check and is unconditionally true: every role can
// read tasks somewhere. With a task it checks access to that specific
// resource, which requires the same organization.
//
// Example:
//
//	taskguard.CanReadTasks(user, nil)    // capability: always true
//	taskguard.CanReadTasks(user, &task)  // resource: same org only
func CanReadTasks(user User, task *Task) bool {
	if task == nil {
		return true
	}
	return user.OrganizationID == task.OrganizationID
}

// CanCreateTask reports whether the user may create tasks. Requires ADMIN
// or higher.
func CanCreateTask(user User) bool {
	return HasRoleOrHigher(user, RoleAdmin)
}

// CanUpdateTask reports whether the user may update the task. Denied across
// organizations. ADMIN and OWNER may update any task in their organization;
// a VIEWER only the tasks they created.
func CanUpdateTask(user User, task Task) bool {
	if user.OrganizationID != task.OrganizationID {
		return false
	}
	if HasRoleOrHigher(user, RoleAdmin) {
		return true
	}
	return user.ID == task.CreatedByUserID
}

// CanDeleteTask reports whether the user may delete the task. Denied across
// organizations. Only OWNER may delete; ADMIN is deliberately excluded even
// though it outranks everything else short of deletion.
func CanDeleteTask(user User, task Task) bool {
	if user.OrganizationID != task.OrganizationID {
		return false
	}
	return user.Role == RoleOwner
}

// CanViewAuditLog reports whether the user may read the access audit log.
// Requires ADMIN or higher.
func CanViewAuditLog(user User) bool {
	return HasRoleOrHigher(user, RoleAdmin)
}

// IsOwner reports whether the user holds the OWNER role.
func IsOwner(user User) bool {
	return user.Role == RoleOwner
}

// IsAdminOrOwner reports whether the user holds ADMIN or OWNER.
func IsAdminOrOwner(user User) bool {
	return HasRoleOrHigher(user, RoleAdmin)
}

// IsViewer reports whether the user holds the VIEWER role.
func IsViewer(user User) bool {
	return user.Role == RoleViewer
}

// IsSameOrganization reports whether the user belongs to the given
// organization.
func IsSameOrganization(user User, organizationID string) bool {
	return user.OrganizationID == organizationID
}

// IsTaskCreator reports whether the user created the task.
func IsTaskCreator(user User, task Task) bool {
	return user.ID == task.CreatedByUserID
}
