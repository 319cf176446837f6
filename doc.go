// Package taskguard provides the role-based access control policy layer for
// a multi-tenant task application.
//
// TaskGuard answers one question: may this user read, create, update or
// delete this task? Decisions are driven by a fixed three-role hierarchy
// (OWNER > ADMIN > VIEWER) and a hard organization boundary: users and tasks
// each belong to exactly one organization, and no role crosses it.
//
// # Core Concepts
//
// Role: one of OWNER, ADMIN, VIEWER. Roles are totally ordered and each has
// a fixed integer rank (VIEWER=1, ADMIN=2, OWNER=3).
//
// User: the authenticated subject (ID, email, role, organization ID),
// supplied by the surrounding identity layer and trusted as-is.
//
// Task: the protected resource (ID, creator user ID, organization ID).
//
// TaskScope: the equality constraints a query must AND together so that a
// result set only contains rows the user is allowed to see.
//
// # Key Rules
//
//   - Cross-organization access is always denied, regardless of role.
//   - Reading tasks is organization-wide for every role.
//   - Creating tasks requires ADMIN or higher.
//   - Updating a task requires ADMIN or higher, except that a VIEWER may
//     update tasks they created themselves.
//   - Deleting a task requires exactly OWNER. ADMIN is not enough; this is
//     a deliberate exception to the rank-implies-capability rule.
//
// # Basic Usage
//
//	// Pure checks against the policy layer
//	if taskguard.CanUpdateTask(user, task) {
//	    // permit the mutation
//	}
//
//	// Scoped list queries
//	scope := taskguard.ScopeForTasks(user)
//	err := db.NewSelect().Model(&tasks).Apply(scope.Apply).Scan(ctx)
//
//	// Check-then-signal validation with descriptive errors
//	if err := taskguard.ValidateTaskAccess(user, task, taskguard.OperationDelete); err != nil {
//	    // err explains the concrete cause (cross-org, owner-only, ...)
//	}
//
// # Service Usage
//
// The Service wraps a dbkit database connection with policy-enforced task
// CRUD and an access audit log:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	service := taskguard.NewService(db)
//
//	tasks, err := service.ListTasks(ctx, user)      // organization-scoped
//	err = service.DeleteTask(ctx, user, taskID)     // OWNER only
//
// # Middleware Usage
//
//	mw := taskguard.NewMiddleware(service)
//
//	router.Handle("/tasks", mw.RequireTaskCreate()(createHandler))
//	router.Handle("/tasks/{taskID}", mw.RequireTaskAccess(taskguard.OperationDelete,
//	    taskguard.TaskFromParam(service, "taskID"))(deleteHandler))
//
// # Audit Log
//
// Every decision the Service makes on a mutation is recorded with the actor,
// operation, task, outcome and request metadata (IP, user agent, request
// ID). Reading the log requires ADMIN or higher.
package taskguard
