// Package memory provides process-local implementations of the account and
// task repositories. It mirrors the Postgres schema rules: unique email,
// owner-scoped task access and cascading task removal on account delete.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/ishwarya-18/todo-app/internal/server/models"
)

// Store holds the shared tables. The zero value is not usable; call NewStore.
type Store struct {
	mu sync.RWMutex

	accounts    map[int64]models.Account
	emails      map[string]int64
	tasks       map[int64]models.Task
	nextAccount int64
	nextTask    int64
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[int64]models.Account),
		emails:   make(map[string]int64),
		tasks:    make(map[int64]models.Task),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Accounts returns an accounts.Repository view of the store.
func (s *Store) Accounts() *AccountRepository {
	return &AccountRepository{s: s}
}

// Tasks returns a tasks.Repository view of the store.
func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{s: s}
}

func newestFirst[T any](items []T, at func(T) (time.Time, int64)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := at(items[i])
		tj, idj := at(items[j])
		if ti.Equal(tj) {
			return idi > idj
		}
		return ti.After(tj)
	})
}
