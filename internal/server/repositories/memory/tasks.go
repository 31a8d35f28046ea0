package memory

import (
	"context"
	"time"

	"github.com/ishwarya-18/todo-app/internal/common"
	"github.com/ishwarya-18/todo-app/internal/server/models"
)

type TaskRepository struct {
	s *Store
}

func (r *TaskRepository) ListByOwner(_ context.Context, ownerID int64) ([]models.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]models.Task, 0)
	for _, t := range r.s.tasks {
		if t.UserID == ownerID {
			result = append(result, t)
		}
	}
	newestFirst(result, func(t models.Task) (time.Time, int64) { return t.CreatedAt, t.ID })
	return result, nil
}

func (r *TaskRepository) Create(_ context.Context, task *models.Task) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[task.UserID]; !ok {
		return nil, common.ErrorNotFound
	}

	r.s.nextTask++
	task.ID = r.s.nextTask
	task.Completed = false
	task.CreatedAt = r.s.now()
	r.s.tasks[task.ID] = *task
	return task, nil
}

func (r *TaskRepository) SetCompleted(_ context.Context, id, ownerID int64, completed bool) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, common.ErrorNotFound
	}
	t.Completed = completed
	r.s.tasks[id] = t
	return &t, nil
}

func (r *TaskRepository) Delete(_ context.Context, id, ownerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[id]
	if !ok || t.UserID != ownerID {
		return common.ErrorNotFound
	}
	delete(r.s.tasks, id)
	return nil
}
