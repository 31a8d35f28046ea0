// Package accounts persists registered accounts.
package accounts

import (
	"context"

	"github.com/ishwarya-18/todo-app/internal/server/models"
)

// Repository is the credential store. Every method is a single statement.
//
// Create returns common.ErrDuplicateIdentity when the email is taken;
// GetByEmail, Delete and Promote return common.ErrorNotFound for unknown rows.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Delete(ctx context.Context, id int64) error
	Promote(ctx context.Context, id int64) error
	// UpsertAdmin inserts account with the admin role, or forces the admin
	// role on the existing row with the same email. The stored hash of an
	// existing row is left untouched. created reports which branch ran.
	UpsertAdmin(ctx context.Context, account *models.Account) (created bool, err error)
}
