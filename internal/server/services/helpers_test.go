package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ishwarya-18/todo-app/internal/logging"
	"github.com/ishwarya-18/todo-app/internal/server/auth"
	"github.com/ishwarya-18/todo-app/internal/server/models"
	"github.com/ishwarya-18/todo-app/internal/server/repositories/memory"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, time.May, 5, 10, 0, 0, 0, time.UTC)

func newTestIssuer() *auth.Issuer {
	return auth.NewIssuer([]byte("test-secret"), 0).WithClock(func() time.Time { return testNow })
}

func newTestAccountService(t *testing.T) (*AccountService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewAccountService(store.Accounts(), auth.NewBcryptHasher(bcrypt.MinCost), newTestIssuer(), logging.Nop()), store
}

var errDB = errors.New("connection reset")

// failingAccounts returns err from every call.
type failingAccounts struct {
	err error
}

func (f failingAccounts) Create(context.Context, *models.Account) (*models.Account, error) {
	return nil, f.err
}
func (f failingAccounts) GetByEmail(context.Context, string) (*models.Account, error) {
	return nil, f.err
}
func (f failingAccounts) List(context.Context) ([]models.Account, error) {
	return nil, f.err
}
func (f failingAccounts) Delete(context.Context, int64) error {
	return f.err
}
func (f failingAccounts) Promote(context.Context, int64) error {
	return f.err
}
func (f failingAccounts) UpsertAdmin(context.Context, *models.Account) (bool, error) {
	return false, f.err
}

// failingTasks returns err from every call.
type failingTasks struct {
	err error
}

func (f failingTasks) ListByOwner(context.Context, int64) ([]models.Task, error) {
	return nil, f.err
}
func (f failingTasks) Create(context.Context, *models.Task) (*models.Task, error) {
	return nil, f.err
}
func (f failingTasks) SetCompleted(context.Context, int64, int64, bool) (*models.Task, error) {
	return nil, f.err
}
func (f failingTasks) Delete(context.Context, int64, int64) error {
	return f.err
}

// stubHasher fails Hash with err.
type stubHasher struct {
	err error
}

func (h stubHasher) Hash(string) (string, error) {
	return "", h.err
}
func (h stubHasher) Compare(string, string) error {
	return h.err
}
