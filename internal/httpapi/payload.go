package httpapi

import (
	"task-manager/internal/model"
	"task-manager/internal/task"
)

// taskPayload is the wire form of a create or update body. priority and
// completed accept any JSON type; see input.
type taskPayload struct {
	Title       model.Optional[string] `json:"title"`
	Description model.Optional[string] `json:"description"`
	Priority    model.Optional[any]    `json:"priority"`
	Completed   model.Optional[any]    `json:"completed"`
	DueDate     model.Optional[string] `json:"due_date"`
}

func (p taskPayload) input() task.Input {
	in := task.Input{
		Title:       p.Title,
		Description: p.Description,
		DueDate:     p.DueDate,
	}

	if p.Priority.Set {
		// a non-string priority is simply not a valid one
		s, _ := p.Priority.Value.(string)
		in.Priority = model.Optional[string]{Set: true, Null: p.Priority.Null, Value: s}
	}
	if p.Completed.Set {
		in.Completed = model.Optional[bool]{Set: true, Null: p.Completed.Null, Value: truthy(p.Completed.Value)}
	}
	return in
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}
