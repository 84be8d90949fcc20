package task

import (
	"context"
	"strings"
	"time"

	"task-manager/internal/model"
)

// Input carries the fields of a create or update request. Absent fields
// have Set == false.
type Input struct {
	Title       model.Optional[string]
	Description model.Optional[string]
	Priority    model.Optional[string]
	Completed   model.Optional[bool]
	DueDate     model.Optional[string]
}

func (in Input) Empty() bool {
	return !in.Title.Set && !in.Description.Set && !in.Priority.Set &&
		!in.Completed.Set && !in.DueDate.Set
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeErr("list", 0, err)
	}
	return tasks, nil
}

func (s *Service) Create(ctx context.Context, in Input) (model.Task, error) {
	if in.Empty() {
		return model.Task{}, ErrNoData
	}
	if !in.Title.Present() || in.Title.Value == "" {
		return model.Task{}, ErrTitleRequired
	}
	title, err := ValidateTitle(in.Title.Value)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description.Value),
		Priority:    model.PriorityMedium,
		Completed:   in.Completed.Value,
	}

	if in.DueDate.Present() && in.DueDate.Value != "" {
		due, err := ParseDueDate(in.DueDate.Value)
		if err != nil {
			return model.Task{}, err
		}
		t.DueDate = &due
	}

	if p, ok := model.ParsePriority(in.Priority.Value); ok {
		t.Priority = p
	}

	now := s.stamp(time.Time{})
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return model.Task{}, storeErr("create", 0, err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (model.Task, error) {
	updated, err := s.repo.Mutate(ctx, id, func(t *model.Task) error {
		if err := applyInput(t, in); err != nil {
			return err
		}
		t.UpdatedAt = s.stamp(t.UpdatedAt)
		return nil
	})
	if err != nil {
		return model.Task{}, storeErr("update", id, err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return storeErr("delete", id, s.repo.Delete(ctx, id))
}

func (s *Service) Toggle(ctx context.Context, id int64) (model.Task, error) {
	toggled, err := s.repo.Mutate(ctx, id, func(t *model.Task) error {
		t.Completed = !t.Completed
		t.UpdatedAt = s.stamp(t.UpdatedAt)
		return nil
	})
	if err != nil {
		return model.Task{}, storeErr("toggle", id, err)
	}
	return toggled, nil
}

// CompletionMessage describes the completion state of t after a toggle.
func CompletionMessage(t model.Task) string {
	if t.Completed {
		return "Task marked as completed"
	}
	return "Task marked as incomplete"
}

// applyInput validates every present field before touching t, so a
// rejected request leaves t unchanged.
func applyInput(t *model.Task, in Input) error {
	if in.Empty() {
		return ErrNoData
	}

	next := *t

	if in.Title.Set {
		title, err := ValidateTitle(in.Title.Value)
		if err != nil {
			return err
		}
		next.Title = title
	}

	if in.Description.Set {
		next.Description = strings.TrimSpace(in.Description.Value)
	}

	if in.Completed.Set {
		next.Completed = in.Completed.Value
	}

	if in.Priority.Set {
		if p, ok := model.ParsePriority(in.Priority.Value); ok {
			next.Priority = p
		}
	}

	if in.DueDate.Set {
		if in.DueDate.Present() && in.DueDate.Value != "" {
			due, err := ParseDueDate(in.DueDate.Value)
			if err != nil {
				return err
			}
			next.DueDate = &due
		} else {
			next.DueDate = nil
		}
	}

	*t = next
	return nil
}

// stamp returns the current time at microsecond precision, moved past prev
// when the clock has not advanced beyond it.
func (s *Service) stamp(prev time.Time) time.Time {
	now := s.now().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}
