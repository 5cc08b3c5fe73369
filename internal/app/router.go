package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taskforge/taskforge/internal/auth"
	"github.com/taskforge/taskforge/internal/todos"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger      *slog.Logger
	Config      *Config
	AuthHandler *auth.Handler
	AuthGate    *auth.Gate
	TodoHandler *todos.Handler
}

// NewRouter constructs the chi.Router with taskforge defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/auth", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r, params.AuthGate)
	})
	r.Route("/api/todos", func(r chi.Router) {
		r.Use(params.AuthGate.RequireAuth)
		params.TodoHandler.MountRoutes(r)
	})

	return r
}
