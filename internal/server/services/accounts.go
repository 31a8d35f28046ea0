// Package services contains server-side business logic. AccountService
// handles signup, login and user administration; TaskService handles the
// owner-scoped to-do list.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ishwarya-18/todo-app/internal/common"
	"github.com/ishwarya-18/todo-app/internal/logging"
	"github.com/ishwarya-18/todo-app/internal/server/auth"
	"github.com/ishwarya-18/todo-app/internal/server/models"
	"github.com/ishwarya-18/todo-app/internal/server/repositories/accounts"
)

// Session is the result of a successful signup or login.
type Session struct {
	Account *models.Account
	Token   string
}

type AccountService struct {
	accounts accounts.Repository
	hasher   auth.Hasher
	issuer   *auth.Issuer
	logger   logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAccountService(repo accounts.Repository, hasher auth.Hasher, issuer *auth.Issuer, logger logging.Logger) *AccountService {
	return &AccountService{accounts: repo, hasher: hasher, issuer: issuer, logger: logger}
}

// CreateAccount hashes password and stores a standard-role account.
// The returned account has no password hash.
func (s *AccountService) CreateAccount(ctx context.Context, name, email, password string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, common.MissingField("Name, email, and password are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrSecretTooLong) {
			return nil, common.InvalidField(err.Error())
		}
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	a, err := s.accounts.Create(ctx, &models.Account{Name: name, Email: email, PasswordHash: hash, Role: models.RoleUser})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, err
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	a.PasswordHash = ""
	return a, nil
}

// Signup creates a standard-role account and returns a token for it.
func (s *AccountService) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	a, err := s.CreateAccount(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(a.ID, a.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account created", "user_id", a.ID)
	return &Session{Account: a, Token: token}, nil
}

// VerifyCredentials returns the account for email when password matches.
// Unknown email and wrong password both wrap common.ErrorUnauthorized; the
// former also wraps common.ErrorNotFound, the latter auth.ErrBadSecret.
func (s *AccountService) VerifyCredentials(ctx context.Context, email, password string) (*models.Account, error) {
	a, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// spend the same bcrypt time as a real comparison
			_ = s.hasher.Compare(s.placeholderHash(), password)
			return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrBadSecret) {
			return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, auth.ErrBadSecret)
		}
		return nil, fmt.Errorf("checking password: %w", err)
	}

	a.PasswordHash = ""
	return a, nil
}

// Login verifies credentials and issues a token carrying the stored role.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, common.MissingField("Email and password are required")
	}

	a, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			reason := "bad password"
			if errors.Is(err, common.ErrorNotFound) {
				reason = "unknown email"
			}
			s.logger.Debug(ctx, "login rejected", "reason", reason)
		}
		return nil, err
	}

	token, err := s.issuer.Issue(a.ID, a.Role)
	if err != nil {
		return nil, err
	}
	return &Session{Account: a, Token: token}, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	list, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	for i := range list {
		list[i].PasswordHash = ""
	}
	return list, nil
}

// DeleteAccount removes target and, through the schema, all of its tasks.
// An actor can never delete their own account.
func (s *AccountService) DeleteAccount(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return common.ErrSelfDeletion
	}
	if err := s.accounts.Delete(ctx, targetID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("deleting account: %w", err)
	}
	s.logger.Info(ctx, "account deleted", "user_id", targetID, "by", actorID)
	return nil
}

// PromoteAccount gives id the admin role. Tokens already issued keep their
// old role until the account logs in again.
func (s *AccountService) PromoteAccount(ctx context.Context, id int64) error {
	if err := s.accounts.Promote(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("promoting account: %w", err)
	}
	s.logger.Info(ctx, "account promoted", "user_id", id)
	return nil
}

func (s *AccountService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("placeholder-secret")
	})
	return s.dummyHash
}
