// Package tasks persists to-do items. Every operation is scoped by owner.
package tasks

import (
	"context"

	"github.com/ishwarya-18/todo-app/internal/server/models"
)

type Repository interface {
	// ListByOwner returns the owner's tasks, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Task, error)
	// Create returns common.ErrorNotFound when the owner no longer exists.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	// SetCompleted and Delete return common.ErrorNotFound both for missing
	// rows and for rows owned by another account.
	SetCompleted(ctx context.Context, id, ownerID int64, completed bool) (*models.Task, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
