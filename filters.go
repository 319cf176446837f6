package taskguard

import "time"

// AccessLogFilter provides options for filtering access audit log queries.
type AccessLogFilter struct {
	// Filter by the user who attempted the operation
	ActorID string

	// Filter by the task involved
	TaskID string

	// Filter by operation ("read", "create", "update", "delete")
	Operation string

	// Filter by outcome; nil means both allowed and denied entries
	Allowed *bool

	// Filter by time range
	Since time.Time
	Until time.Time

	// Pagination
	Limit  int
	Offset int
}

// NewAccessLogFilter creates a new AccessLogFilter with default values.
func NewAccessLogFilter() AccessLogFilter {
	return AccessLogFilter{
		Limit: 100,
	}
}

// WithActor sets the actor ID filter.
func (f AccessLogFilter) WithActor(actorID string) AccessLogFilter {
	f.ActorID = actorID
	return f
}

// WithTask sets the task ID filter.
func (f AccessLogFilter) WithTask(taskID string) AccessLogFilter {
	f.TaskID = taskID
	return f
}

// WithOperation sets the operation filter.
func (f AccessLogFilter) WithOperation(op Operation) AccessLogFilter {
	f.Operation = string(op)
	return f
}

// OnlyAllowed restricts results to permitted operations.
func (f AccessLogFilter) OnlyAllowed() AccessLogFilter {
	allowed := true
	f.Allowed = &allowed
	return f
}

// OnlyDenied restricts results to denied operations.
func (f AccessLogFilter) OnlyDenied() AccessLogFilter {
	allowed := false
	f.Allowed = &allowed
	return f
}

// WithTimeRange sets the time range filter.
func (f AccessLogFilter) WithTimeRange(since, until time.Time) AccessLogFilter {
	f.Since = since
	f.Until = until
	return f
}

// WithSince sets the start time filter.
func (f AccessLogFilter) WithSince(since time.Time) AccessLogFilter {
	f.Since = since
	return f
}

// WithUntil sets the end time filter.
func (f AccessLogFilter) WithUntil(until time.Time) AccessLogFilter {
	f.Until = until
	return f
}

// WithLimit sets the limit for results.
func (f AccessLogFilter) WithLimit(limit int) AccessLogFilter {
	f.Limit = limit
	return f
}

// WithOffset sets the offset for pagination.
func (f AccessLogFilter) WithOffset(offset int) AccessLogFilter {
	f.Offset = offset
	return f
}

// WithPagination sets both limit and offset.
func (f AccessLogFilter) WithPagination(limit, offset int) AccessLogFilter {
	f.Limit = limit
	f.Offset = offset
	return f
}
