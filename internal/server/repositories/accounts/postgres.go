package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ishwarya-18/todo-app/internal/common"
	"github.com/ishwarya-18/todo-app/internal/dbx"
	"github.com/ishwarya-18/todo-app/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO users (name, email, password, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	role := account.Role
	if role == "" {
		role = models.RoleUser
	}

	err := r.db.QueryRowContext(ctx, query,
		account.Name, account.Email, account.PasswordHash, string(role)).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if dbx.HasCode(err, dbx.CodeUniqueViolation) {
			return nil, common.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.Role = role
	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, name, email, password, role, created_at FROM users
		 WHERE email = $1
		 `

	a := &models.Account{}
	var role string
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &role, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	a.Role = models.Role(role)
	return a, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Account, error) {
	query :=
		`SELECT id, name, email, role, created_at FROM users
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		var role string
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		a.Role = models.Role(role)
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) Promote(ctx context.Context, id int64) error {
	query := `UPDATE users SET role = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, string(models.RoleAdmin), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) UpsertAdmin(ctx context.Context, account *models.Account) (bool, error) {
	query :=
		`INSERT INTO users (name, email, password, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		 RETURNING id, (xmax = 0) AS inserted
		 `

	var created bool
	err := r.db.QueryRowContext(ctx, query,
		account.Name, account.Email, account.PasswordHash, string(models.RoleAdmin)).Scan(&account.ID, &created)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	account.Role = models.RoleAdmin
	return created, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
