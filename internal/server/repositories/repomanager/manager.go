package repomanager

import (
	"context"
	"strings"

	"github.com/ishwarya-18/todo-app/internal/server/repositories/accounts"
	"github.com/ishwarya-18/todo-app/internal/server/repositories/tasks"
)

// MemoryDSN selects the process-local store instead of PostgreSQL.
const MemoryDSN = "memory"

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Ping(context.Context) error
	Accounts() accounts.Repository
	Tasks() tasks.Repository
	Close() error
}

// Open returns the manager for dsn: the in-memory store for MemoryDSN,
// PostgreSQL otherwise.
func Open(ctx context.Context, dsn string) (RepositoryManager, error) {
	if strings.EqualFold(strings.TrimSpace(dsn), MemoryDSN) {
		return NewInMemoryRepositoryManager(), nil
	}
	return OpenPostgres(ctx, dsn)
}
