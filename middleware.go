package taskguard

import (
	"errors"
	"net/http"
)

// Middleware provides HTTP middleware for policy checking.
type Middleware struct {
	service      *Service
	getUser      func(*http.Request) (User, bool)
	errorHandler func(http.ResponseWriter, *http.Request, error)
}

// MiddlewareOption configures the Middleware.
type MiddlewareOption func(*Middleware)

// NewMiddleware creates a new Middleware instance.
//
// Example:
//
//	mw := taskguard.NewMiddleware(service,
//	    taskguard.WithUserExtractor(func(r *http.Request) (taskguard.User, bool) {
//	        return sessionUser(r)
//	    }),
//	)
func NewMiddleware(service *Service, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		service:      service,
		getUser:      defaultGetUser,
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithUserExtractor sets a custom function to extract the user from a request.
func WithUserExtractor(fn func(*http.Request) (User, bool)) MiddlewareOption {
	return func(m *Middleware) {
		m.getUser = fn
	}
}

// WithErrorHandler sets a custom error handler for middleware.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) MiddlewareOption {
	return func(m *Middleware) {
		m.errorHandler = fn
	}
}

func defaultGetUser(r *http.Request) (User, bool) {
	return GetUser(r.Context())
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsPermissionDenied(err):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case IsTaskNotFound(err):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, ErrNoUser):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// TaskResolver loads the task an HTTP request refers to.
type TaskResolver func(*http.Request) (Task, error)

// TaskFromParam creates a TaskResolver that reads the task ID from a URL
// path parameter and loads the task. Compatible with chi, gorilla/mux, and
// standard library patterns.
//
// Example:
//
//	// For route /tasks/{taskID}
//	mw.RequireTaskAccess(taskguard.OperationUpdate, taskguard.TaskFromParam(service, "taskID"))
func TaskFromParam(service *Service, paramName string) TaskResolver {
	return func(r *http.Request) (Task, error) {
		taskID := r.PathValue(paramName)
		if taskID == "" {
			// Try context (set by router middleware)
			if v := r.Context().Value(paramName); v != nil {
				if s, ok := v.(string); ok {
					taskID = s
				}
			}
		}
		if taskID == "" {
			return Task{}, NewError(ErrTaskNotFound, "task ID not found in request")
		}
		task, err := service.getTaskByID(r.Context(), taskID)
		if err != nil {
			return Task{}, err
		}
		return *task, nil
	}
}

// TaskFromHeader creates a TaskResolver that reads the task ID from a header.
func TaskFromHeader(service *Service, headerName string) TaskResolver {
	return func(r *http.Request) (Task, error) {
		taskID := r.Header.Get(headerName)
		if taskID == "" {
			return Task{}, NewError(ErrTaskNotFound, "task ID not found in header")
		}
		task, err := service.getTaskByID(r.Context(), taskID)
		if err != nil {
			return Task{}, err
		}
		return *task, nil
	}
}

// RequireRole creates middleware that requires a minimum role. The
// operationLabel names the guarded action in the denial message.
//
// Example:
//
//	router.Handle("/audit", mw.RequireRole(taskguard.RoleAdmin, "audit log access")(auditHandler))
func (m *Middleware) RequireRole(required Role, operationLabel string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := m.getUser(r)
			if !ok {
				m.errorHandler(w, r, ErrNoUser)
				return
			}

			if err := RequireRole(user, required, operationLabel); err != nil {
				m.errorHandler(w, r, err)
				return
			}

			ctx := WithChecker(r.Context(), NewChecker(user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireTaskCreate creates middleware that requires task creation
// capability (ADMIN or higher).
//
// Example:
//
//	router.Handle("/tasks", mw.RequireTaskCreate()(createHandler))
func (m *Middleware) RequireTaskCreate() func(http.Handler) http.Handler {
	return m.RequireRole(RoleAdmin, "task creation")
}

// RequireTaskAccess creates middleware that validates per-task access for
// the given operation. The resolver loads the task the request refers to.
//
// Example:
//
//	router.Handle("/tasks/{taskID}", mw.RequireTaskAccess(taskguard.OperationDelete,
//	    taskguard.TaskFromParam(service, "taskID"))(deleteHandler))
func (m *Middleware) RequireTaskAccess(operation Operation, resolver TaskResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := m.getUser(r)
			if !ok {
				m.errorHandler(w, r, ErrNoUser)
				return
			}

			task, err := resolver(r)
			if err != nil {
				m.errorHandler(w, r, err)
				return
			}

			if err := ValidateTaskAccess(user, task, operation); err != nil {
				m.errorHandler(w, r, err)
				return
			}

			ctx := WithChecker(r.Context(), NewChecker(user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoadChecker creates middleware that loads the user's Checker into context.
// Use this when you want to do permission checks in the handler rather than
// middleware.
//
// Example:
//
//	router.Handle("/dashboard", mw.LoadChecker()(dashboardHandler))
//
//	func dashboardHandler(w http.ResponseWriter, r *http.Request) {
//	    checker := taskguard.FromContext(r.Context())
//	    if checker != nil && checker.CanViewAuditLog() {
//	        // Show audit features
//	    }
//	}
func (m *Middleware) LoadChecker() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := m.getUser(r)
			if !ok {
				// No user, continue without checker
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithChecker(r.Context(), NewChecker(user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// InjectAuditContext creates middleware that extracts audit information from
// the request and adds it to the context for the access audit log.
//
// Example:
//
//	router.Use(mw.InjectAuditContext())
func (m *Middleware) InjectAuditContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Extract IP address
			ip := r.Header.Get("X-Forwarded-For")
			if ip == "" {
				ip = r.Header.Get("X-Real-IP")
			}
			if ip == "" {
				ip = r.RemoteAddr
			}
			ctx = WithIPAddress(ctx, ip)

			// Extract User Agent
			ctx = WithUserAgent(ctx, r.UserAgent())

			// Extract Request ID (commonly set by other middleware)
			requestID := r.Header.Get("X-Request-ID")
			if requestID != "" {
				ctx = WithRequestID(ctx, requestID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
