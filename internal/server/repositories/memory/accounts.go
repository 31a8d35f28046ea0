package memory

import (
	"context"
	"time"

	"github.com/ishwarya-18/todo-app/internal/common"
	"github.com/ishwarya-18/todo-app/internal/server/models"
)

type AccountRepository struct {
	s *Store
}

func (r *AccountRepository) Create(_ context.Context, account *models.Account) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.emails[account.Email]; ok {
		return nil, common.ErrDuplicateIdentity
	}

	if account.Role == "" {
		account.Role = models.RoleUser
	}
	r.insertLocked(account)
	return account, nil
}

func (r *AccountRepository) insertLocked(account *models.Account) {
	r.s.nextAccount++
	account.ID = r.s.nextAccount
	account.CreatedAt = r.s.now()
	r.s.accounts[account.ID] = *account
	r.s.emails[account.Email] = account.ID
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	a := r.s.accounts[id]
	return &a, nil
}

func (r *AccountRepository) List(_ context.Context) ([]models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]models.Account, 0, len(r.s.accounts))
	for _, a := range r.s.accounts {
		a.PasswordHash = ""
		result = append(result, a)
	}
	newestFirst(result, func(a models.Account) (time.Time, int64) { return a.CreatedAt, a.ID })
	return result, nil
}

func (r *AccountRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}

	delete(r.s.accounts, id)
	delete(r.s.emails, a.Email)
	for tid, t := range r.s.tasks {
		if t.UserID == id {
			delete(r.s.tasks, tid)
		}
	}
	return nil
}

func (r *AccountRepository) Promote(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.Role = models.RoleAdmin
	r.s.accounts[id] = a
	return nil
}

func (r *AccountRepository) UpsertAdmin(_ context.Context, account *models.Account) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account.Role = models.RoleAdmin

	if id, ok := r.s.emails[account.Email]; ok {
		a := r.s.accounts[id]
		a.Role = models.RoleAdmin
		r.s.accounts[id] = a
		account.ID = id
		return false, nil
	}

	r.insertLocked(account)
	return true, nil
}
