package tasks

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

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	query :=
		`SELECT id, task, completed, user_id, created_at FROM todos
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Task, &t.Completed, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`INSERT INTO todos (task, user_id)
		 VALUES ($1, $2)
		 RETURNING id, completed, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, task.Task, task.UserID).Scan(&task.ID, &task.Completed, &task.CreatedAt)
	if err != nil {
		if dbx.HasCode(err, dbx.CodeForeignKeyViolation) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) SetCompleted(ctx context.Context, id, ownerID int64, completed bool) (*models.Task, error) {
	query :=
		`UPDATE todos SET completed = $1
		 WHERE id = $2 AND user_id = $3
		 RETURNING id, task, completed, user_id, created_at
		 `

	t := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, completed, id, ownerID).Scan(&t.ID, &t.Task, &t.Completed, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
