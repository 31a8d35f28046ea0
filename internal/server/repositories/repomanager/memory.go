package repomanager

import (
	"context"

	"github.com/ishwarya-18/todo-app/internal/server/repositories/accounts"
	"github.com/ishwarya-18/todo-app/internal/server/repositories/memory"
	"github.com/ishwarya-18/todo-app/internal/server/repositories/tasks"
)

// InMemoryRepositoryManager keeps everything in process memory. Data is lost
// on restart; it exists for local development and tests.
type InMemoryRepositoryManager struct {
	accounts *memory.AccountRepository
	tasks    *memory.TaskRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	s := memory.NewStore()
	return &InMemoryRepositoryManager{accounts: s.Accounts(), tasks: s.Tasks()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Ping(context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
