// Package memstore keeps tasks in process memory. Contents are lost on exit.
package memstore

import (
	"context"
	"sort"
	"sync"

	"task-manager/internal/model"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]model.Task
}

func New() *Store {
	return &Store{tasks: make(map[int64]model.Task)}
}

func (s *Store) Create(_ context.Context, t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	s.tasks[t.ID] = clone(t)
	return t, nil
}

func (s *Store) List(_ context.Context, filter model.TaskFilter) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != "" && string(t.Priority) != filter.Priority {
			continue
		}
		out = append(out, clone(t))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) Mutate(_ context.Context, id int64, fn func(*model.Task) error) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrNotFound
	}

	t = clone(t)
	if err := fn(&t); err != nil {
		return model.Task{}, err
	}
	t.ID = id
	s.tasks[id] = clone(t)
	return t, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

// clone copies the due date so callers never share it with the map.
func clone(t model.Task) model.Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}
