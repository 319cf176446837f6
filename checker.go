package taskguard

// Checker binds the policy predicates to a single user. It is typically
// created by middleware and stored in context for use in handlers, so a
// handler does not have to thread the User value through every check.
type Checker struct {
	user User
}

// NewChecker creates a new Checker for a user.
func NewChecker(user User) *Checker {
	return &Checker{user: user}
}

// User returns the user this checker is for.
func (c *Checker) User() User {
	return c.user
}

// CanRead checks read access. A nil task is the general capability check.
//
// Example:
//
//	if checker.CanRead(&task) {
//	    // task is visible to this user
//	}
func (c *Checker) CanRead(task *Task) bool {
	return CanReadTasks(c.user, task)
}

// CanCreate checks whether the user may create tasks.
func (c *Checker) CanCreate() bool {
	return CanCreateTask(c.user)
}

// CanUpdate checks whether the user may update the task.
func (c *Checker) CanUpdate(task Task) bool {
	return CanUpdateTask(c.user, task)
}

// CanDelete checks whether the user may delete the task.
func (c *Checker) CanDelete(task Task) bool {
	return CanDeleteTask(c.user, task)
}

// CanViewAuditLog checks whether the user may read the access audit log.
func (c *Checker) CanViewAuditLog() bool {
	return CanViewAuditLog(c.user)
}

// HasRoleOrHigher checks whether the user's role ranks at least required.
func (c *Checker) HasRoleOrHigher(required Role) bool {
	return HasRoleOrHigher(c.user, required)
}

// Validate runs ValidateTaskAccess for the operation on the task.
func (c *Checker) Validate(task Task, operation Operation) error {
	return ValidateTaskAccess(c.user, task, operation)
}

// TaskScope returns the read scope for this user.
func (c *Checker) TaskScope() TaskScope {
	return ScopeForTasks(c.user)
}

// OwnTaskScope returns the own-tasks scope for this user.
func (c *Checker) OwnTaskScope() TaskScope {
	return ScopeForOwnTasks(c.user)
}

// Describe returns the human-readable permission summary for this user.
func (c *Checker) Describe() string {
	return PermissionDescription(c.user)
}
