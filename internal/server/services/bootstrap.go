package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ishwarya-18/todo-app/internal/logging"
	"github.com/ishwarya-18/todo-app/internal/server/auth"
	"github.com/ishwarya-18/todo-app/internal/server/models"
	"github.com/ishwarya-18/todo-app/internal/server/repositories/accounts"
)

// DefaultAdminName is the display name given to a freshly created admin.
const DefaultAdminName = "Admin"

// ReconcileAdmin makes sure the account with the designated identity exists
// and holds the admin role. A missing account is created with initialSecret;
// an existing one only has its role forced, its password is kept. Running it
// any number of times leaves exactly one such account.
func ReconcileAdmin(ctx context.Context, repo accounts.Repository, hasher auth.Hasher, identity, initialSecret string, logger logging.Logger) error {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return errors.New("admin identity is empty")
	}

	hash, err := hasher.Hash(initialSecret)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	a := &models.Account{Name: DefaultAdminName, Email: identity, PasswordHash: hash}
	created, err := repo.UpsertAdmin(ctx, a)
	if err != nil {
		return fmt.Errorf("reconciling admin: %w", err)
	}

	if created {
		logger.Info(ctx, "default admin user created", "email", identity, "user_id", a.ID)
	} else {
		logger.Info(ctx, "admin user verified", "email", identity, "user_id", a.ID)
	}
	return nil
}
