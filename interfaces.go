package taskguard

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// Database defines the database operations interface for dependency injection
type Database interface {
	dbkit.IDB
}

// TransactionManager defines the transaction management interface
type TransactionManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	TransactionWithOptions(ctx context.Context, opts dbkit.TxOptions, fn func(ctx context.Context) error) error
	ReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MigrationManager defines the migration management interface
type MigrationManager interface {
	Migrations() []dbkit.Migration
}

// HealthMonitor defines the health monitoring interface
type HealthMonitor interface {
	Health(ctx context.Context) dbkit.HealthStatus
	IsHealthy(ctx context.Context) bool
	Ping(ctx context.Context) error
	GetPoolStats() dbkit.PoolStats
}

// PoolManager defines the connection pool management interface
type PoolManager interface {
	ConfigureConnectionPool(config PoolConfig) error
	GetConnectionPoolConfig() (*PoolConfig, error)
	ResetConnectionPool() error
}

// TaskStore defines the policy-enforced task storage interface
type TaskStore interface {
	ListTasks(ctx context.Context, user User) ([]Task, error)
	ListOwnTasks(ctx context.Context, user User) ([]Task, error)
	CountTasks(ctx context.Context, user User) (int, error)
	GetTask(ctx context.Context, user User, taskID string) (*Task, error)
	CreateTask(ctx context.Context, user User, task *Task) error
	UpdateTask(ctx context.Context, user User, task *Task) error
	DeleteTask(ctx context.Context, user User, taskID string) error
}

// AccessAuditor defines the access audit log interface
type AccessAuditor interface {
	GetAccessLog(ctx context.Context, user User, filter AccessLogFilter) ([]AccessAuditLog, error)
}
