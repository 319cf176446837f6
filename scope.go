package taskguard

import "github.com/uptrace/bun"

// TaskScope is the set of equality constraints a task query must AND
// together to enforce organization isolation and per-role visibility. It is
// pure data; the query layer applies it, TaskGuard never executes queries
// itself.
type TaskScope struct {
	// OrganizationID is always present: no scope ever crosses the tenant
	// boundary.
	OrganizationID string

	// CreatedByUserID restricts results to a single creator when non-empty.
	CreatedByUserID string
}

// ScopeForTasks returns the scope for "all tasks visible to this user".
// Read visibility is organization-wide for every role, so the scope never
// constrains the creator, not even for viewers.
//
// Example:
//
//	scope := taskguard.ScopeForTasks(user)
//	err := db.NewSelect().Model(&tasks).Apply(scope.Apply).Scan(ctx)
func ScopeForTasks(user User) TaskScope {
	return TaskScope{
		OrganizationID: user.OrganizationID,
	}
}

// ScopeForOwnTasks returns the scope for "this user's own tasks". For a
// VIEWER that adds the creator constraint; ADMIN and OWNER see the whole
// organization either way.
func ScopeForOwnTasks(user User) TaskScope {
	scope := TaskScope{
		OrganizationID: user.OrganizationID,
	}
	if user.Role == RoleViewer {
		scope.CreatedByUserID = user.ID
	}
	return scope
}

// Apply translates the scope into WHERE clauses on a bun select query.
// Every constraint is ANDed; this is the explicit translation step the
// query layer uses instead of merging loose filter maps.
//
// Example:
//
//	q := db.NewSelect().Model(&tasks).Apply(scope.Apply)
func (s TaskScope) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	q = q.Where("organization_id = ?", s.OrganizationID)
	if s.CreatedByUserID != "" {
		q = q.Where("created_by_user_id = ?", s.CreatedByUserID)
	}
	return q
}

// Conditions returns the scope as a column/value map for query layers that
// do not use bun. Every entry must be ANDed as an equality constraint.
func (s TaskScope) Conditions() map[string]string {
	conditions := map[string]string{
		"organization_id": s.OrganizationID,
	}
	if s.CreatedByUserID != "" {
		conditions["created_by_user_id"] = s.CreatedByUserID
	}
	return conditions
}

// RestrictsCreator reports whether the scope constrains the task creator.
func (s TaskScope) RestrictsCreator() bool {
	return s.CreatedByUserID != ""
}
