package todos

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taskforge/taskforge/internal/shared"
)

// Handler wires HTTP endpoints for todo CRUD. All routes assume the
// auth gate already attached an identity to the request context.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers todo routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
	r.Patch("/{id}/toggle", h.handleToggle)
}

type createTodoRequest struct {
	Title     string `json:"title"`
	Completed *bool  `json:"completed"`
}

type updateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondError(w, http.StatusUnauthorized, "Unauthorized", "User authentication required")
		return
	}

	items, err := h.service.List(r.Context(), id.UserID)
	if err != nil {
		h.serverError(w, "list todos", err)
		return
	}

	shared.RespondJSON(w, http.StatusOK, shared.Envelope{
		"data":    items,
		"message": fmt.Sprintf("Retrieved %d todos", len(items)),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, todoID, ok := h.requireIdentityAndID(w, r)
	if !ok {
		return
	}

	todo, err := h.service.Get(r.Context(), todoID, id.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, "Todo not found", "")
			return
		}
		h.serverError(w, "get todo", err)
		return
	}

	shared.RespondJSON(w, http.StatusOK, shared.Envelope{"data": todo})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondError(w, http.StatusUnauthorized, "Unauthorized", "User authentication required")
		return
	}

	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		shared.RespondError(w, http.StatusBadRequest, "Validation failed", "Title is required")
		return
	}
	if len(req.Title) > TitleMaxLen {
		shared.RespondError(w, http.StatusBadRequest, "Validation failed",
			fmt.Sprintf("Title cannot be longer than %d characters", TitleMaxLen))
		return
	}
	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	todo, err := h.service.Create(r.Context(), id.UserID, title, completed)
	if err != nil {
		h.serverError(w, "create todo", err)
		return
	}

	shared.RespondJSON(w, http.StatusCreated, shared.Envelope{
		"data":    todo,
		"message": "Todo created successfully",
	})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, todoID, ok := h.requireIdentityAndID(w, r)
	if !ok {
		return
	}

	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if req.Title == nil && req.Completed == nil {
		shared.RespondError(w, http.StatusBadRequest, "Validation failed",
			"At least one field (title or completed) must be provided")
		return
	}
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			shared.RespondError(w, http.StatusBadRequest, "Validation failed", "Title cannot be empty")
			return
		}
		if len(*req.Title) > TitleMaxLen {
			shared.RespondError(w, http.StatusBadRequest, "Validation failed",
				fmt.Sprintf("Title cannot be longer than %d characters", TitleMaxLen))
			return
		}
		req.Title = &trimmed
	}

	todo, err := h.service.Update(r.Context(), todoID, id.UserID, UpdateInput{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, "Todo not found", "")
			return
		}
		h.serverError(w, "update todo", err)
		return
	}

	shared.RespondJSON(w, http.StatusOK, shared.Envelope{
		"data":    todo,
		"message": "Todo updated successfully",
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, todoID, ok := h.requireIdentityAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), todoID, id.UserID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, "Todo not found", "")
			return
		}
		h.serverError(w, "delete todo", err)
		return
	}

	shared.RespondJSON(w, http.StatusOK, shared.Envelope{"message": "Todo deleted successfully"})
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	id, todoID, ok := h.requireIdentityAndID(w, r)
	if !ok {
		return
	}

	todo, err := h.service.ToggleComplete(r.Context(), todoID, id.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, "Todo not found", "")
			return
		}
		h.serverError(w, "toggle todo", err)
		return
	}

	shared.RespondJSON(w, http.StatusOK, shared.Envelope{
		"data":    todo,
		"message": "Todo status toggled",
	})
}

func (h *Handler) requireIdentityAndID(w http.ResponseWriter, r *http.Request) (shared.Identity, int64, bool) {
	id, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondError(w, http.StatusUnauthorized, "Unauthorized", "User authentication required")
		return shared.Identity{}, 0, false
	}
	todoID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || todoID <= 0 {
		shared.RespondError(w, http.StatusBadRequest, "Invalid todo ID", "")
		return shared.Identity{}, 0, false
	}
	return id, todoID, true
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	if h.logger != nil {
		h.logger.Error(op, slog.Any("error", err))
	}
	shared.RespondError(w, http.StatusInternalServerError, "Internal server error", "")
}
