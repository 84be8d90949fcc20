package task

import (
	"context"

	"task-manager/internal/model"
)

type Repository interface {
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	Create(ctx context.Context, t model.Task) (model.Task, error)
	// Mutate loads the task, hands it to fn and persists the result in one
	// transaction. An error from fn aborts without writing anything.
	Mutate(ctx context.Context, id int64, fn func(*model.Task) error) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}
