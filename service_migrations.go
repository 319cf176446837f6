package taskguard

import (
	"github.com/fernandezvara/dbkit"
)

// MigrationService provides migration management functionality as an extension to Service
type MigrationService struct {
	*Service
}

// NewMigrationService creates a new migration service extension
func NewMigrationService(service *Service) *MigrationService {
	return &MigrationService{Service: service}
}

// Migrations returns all database migrations required for TaskGuard.
// Use dbkit.Migrate(ctx, service.Migrations()) to run migrations.
// Use dbkit.MigrationStatus(ctx, service.Migrations()) to check status.
func (ms *MigrationService) Migrations() []dbkit.Migration {
	return []dbkit.Migration{
		{
			ID:          "taskguard-001",
			Description: "Create tasks table",
			SQL: `
                CREATE TABLE IF NOT EXISTS tasks (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    title TEXT NOT NULL,
                    description TEXT,
                    status TEXT NOT NULL DEFAULT 'open',
                    created_by_user_id TEXT NOT NULL,
                    organization_id TEXT NOT NULL,
                    created_at TIMESTAMPTZ DEFAULT current_timestamp,
                    updated_at TIMESTAMPTZ DEFAULT current_timestamp
                )`,
		},
		{
			ID:          "taskguard-002",
			Description: "Create access_audit_log table",
			SQL: `
                CREATE TABLE IF NOT EXISTS access_audit_log (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    timestamp TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    actor_id TEXT NOT NULL,
                    actor_role TEXT NOT NULL,
                    organization_id TEXT NOT NULL,
                    operation TEXT NOT NULL,
                    task_id TEXT,
                    allowed BOOLEAN NOT NULL,
                    reason TEXT,
                    ip_address TEXT,
                    user_agent TEXT,
                    request_id TEXT
                )`,
		},
		{
			ID:          "taskguard-003",
			Description: "Index tasks by organization and creator",
			SQL: `
                CREATE INDEX IF NOT EXISTS idx_tasks_org ON tasks (organization_id);
                CREATE INDEX IF NOT EXISTS idx_tasks_org_creator ON tasks (organization_id, created_by_user_id)`,
		},
	}
}

// Migrations forwards to the migration extension so callers can run
// db.Migrate(ctx, service.Migrations()) without the extension type.
func (s *Service) Migrations() []dbkit.Migration {
	return NewMigrationService(s).Migrations()
}
