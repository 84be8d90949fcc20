package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"task-manager/internal/model"
	"task-manager/internal/task"
)

type listResponse struct {
	Success bool         `json:"success"`
	Tasks   []model.Task `json:"tasks"`
	Count   int          `json:"count"`
}

type taskResponse struct {
	Success bool        `json:"success"`
	Task    *model.Task `json:"task,omitempty"`
	Message string      `json:"message"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, nil); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	filter := parseListFilters(r.URL.Query())

	tasks, err := s.service.List(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, r, "list", 0, err, "Failed to fetch tasks")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Tasks:   tasks,
		Count:   len(tasks),
	})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var p taskPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	created, err := s.service.Create(r.Context(), p.input())
	if err != nil {
		s.writeServiceError(w, r, "create", 0, err, "Failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, taskResponse{
		Success: true,
		Task:    &created,
		Message: "Task created successfully",
	})
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var p taskPayload
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	updated, err := s.service.Update(r.Context(), id, p.input())
	if err != nil {
		s.writeServiceError(w, r, "update", id, err, "Failed to update task")
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{
		Success: true,
		Task:    &updated,
		Message: "Task updated successfully",
	})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := s.service.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, "delete", id, err, "Failed to delete task")
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	toggled, err := s.service.Toggle(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, "toggle", id, err, "Failed to toggle task completion")
		return
	}

	writeJSON(w, http.StatusOK, taskResponse{
		Success: true,
		Task:    &toggled,
		Message: task.CompletionMessage(toggled),
	})
}

// taskID reads the {id} URL parameter. Values that do not fit an int64 are
// treated like an unknown route.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resource not found")
		return 0, false
	}
	return id, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, op string, id int64, err error, failMsg string) {
	var ve *task.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	default:
		s.logger.Error("task operation failed",
			"rid", RequestIDFromContext(r.Context()),
			"op", op,
			"task_id", id,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, failMsg)
	}
}
