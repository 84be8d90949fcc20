package httpapi

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"task-manager/internal/task"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	service *task.Service
	logger  *slog.Logger
	index   *template.Template
	router  chi.Router
}

// NewServer wires the task API, the UI page and the health endpoints.
// ready is pinged by /readyz.
func NewServer(service *task.Service, ready DBPinger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		service: service,
		logger:  logger,
		index:   template.Must(template.ParseFS(templatesFS, "templates/index.html")),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(WithRequestID)
	r.Use(Logging(logger))
	r.Use(Recover(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", ReadyzHandler(ready))

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", s.handleListTasks)
		r.Post("/", s.handleCreateTask)
		r.Put("/{id:[0-9]+}", s.handleUpdateTask)
		r.Delete("/{id:[0-9]+}", s.handleDeleteTask)
		r.Patch("/{id:[0-9]+}/toggle", s.handleToggleTask)
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
