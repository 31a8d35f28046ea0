package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ishwarya-18/todo-app/internal/common"
	"github.com/ishwarya-18/todo-app/internal/server/models"
	"github.com/ishwarya-18/todo-app/internal/server/repositories/tasks"
)

// MaxTaskLength is the longest task text accepted, in characters.
const MaxTaskLength = 255

type TaskService struct {
	tasks tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{tasks: repo}
}

func (s *TaskService) List(ctx context.Context, ownerID int64) ([]models.Task, error) {
	list, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return list, nil
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, text string) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.MissingField("Task title is required")
	}
	if utf8.RuneCountInString(text) > MaxTaskLength {
		return nil, common.InvalidField(fmt.Sprintf("Task title must be at most %d characters", MaxTaskLength))
	}

	t, err := s.tasks.Create(ctx, &models.Task{Task: text, UserID: ownerID})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

// SetCompleted returns common.ErrorNotFound when id is not one of owner's tasks.
func (s *TaskService) SetCompleted(ctx context.Context, ownerID, id int64, completed bool) (*models.Task, error) {
	t, err := s.tasks.SetCompleted(ctx, id, ownerID, completed)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return t, nil
}

// Delete returns common.ErrorNotFound when id is not one of owner's tasks.
func (s *TaskService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.tasks.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}
