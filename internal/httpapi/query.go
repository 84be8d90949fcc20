package httpapi

import (
	"net/url"
	"strings"

	"task-manager/internal/model"
)

// parseListFilters never fails: a present completed parameter filters on
// value == "true" (case-insensitive), so any other value selects open tasks.
func parseListFilters(q url.Values) model.TaskFilter {
	var filter model.TaskFilter

	if _, ok := q["completed"]; ok {
		completed := strings.ToLower(q.Get("completed")) == "true"
		filter.Completed = &completed
	}

	filter.Priority = q.Get("priority")
	return filter
}
