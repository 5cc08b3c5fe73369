package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskforge/taskforge/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	tokens    *TokenManager
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, tokens *TokenManager) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		tokens:    tokens,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router, gate *Gate) {
	r.Post("/signup", h.handleSignup)
	r.Post("/signin", h.handleSignin)
	r.With(gate.RequireAuth).Get("/profile", h.handleProfile)
}

type signupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Mobile    string `json:"mobile" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "All fields are required",
			"firstName, lastName, email, mobile, and password are required")
		return
	}
	if !ValidEmail(req.Email) {
		shared.RespondError(w, http.StatusBadRequest, "Invalid email format", "")
		return
	}
	if !ValidMobile(req.Mobile) {
		shared.RespondError(w, http.StatusBadRequest, "Invalid mobile number format", "")
		return
	}
	if err := ValidatePassword(req.Password); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "Invalid password", err.Error())
		return
	}

	// Advisory pre-check for a field-specific message. The store
	// constraint below is the authority if two signups race.
	existing, err := h.service.UserExists(r.Context(), req.Email, req.Mobile)
	if err != nil {
		h.serverError(w, "signup exists check", err)
		return
	}
	if existing.EmailTaken {
		shared.RespondError(w, http.StatusConflict, "User already exists", "Email is already registered")
		return
	}
	if existing.MobileTaken {
		shared.RespondError(w, http.StatusConflict, "User already exists", "Mobile number is already registered")
		return
	}

	user, err := h.service.Signup(r.Context(), SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrDuplicateEmail):
			shared.RespondError(w, http.StatusConflict, "User already exists", "Email is already registered")
		case errors.Is(err, shared.ErrDuplicateMobile):
			shared.RespondError(w, http.StatusConflict, "User already exists", "Mobile number is already registered")
		default:
			h.serverError(w, "signup", err)
		}
		return
	}

	token, err := h.tokens.Issue(shared.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		h.serverError(w, "issue token", err)
		return
	}

	shared.RespondJSON(w, http.StatusCreated, shared.Envelope{
		"user":    user,
		"token":   token,
		"message": "User registered successfully",
	})
}

func (h *Handler) handleSignin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, "Email and password are required", "")
		return
	}
	if !ValidEmail(req.Email) {
		shared.RespondError(w, http.StatusBadRequest, "Invalid email format", "")
		return
	}

	user, err := h.service.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			shared.RespondError(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
			return
		}
		h.serverError(w, "signin", err)
		return
	}

	token, err := h.tokens.Issue(shared.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		h.serverError(w, "issue token", err)
		return
	}

	shared.RespondJSON(w, http.StatusOK, shared.Envelope{
		"user":    user,
		"token":   token,
		"message": "Login successful",
	})
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	user, err := h.service.FindByID(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, "User not found", "")
			return
		}
		h.serverError(w, "get profile", err)
		return
	}

	shared.RespondJSON(w, http.StatusOK, shared.Envelope{
		"user":    user,
		"message": "Profile retrieved successfully",
	})
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	if h.logger != nil {
		h.logger.Error(op, slog.Any("error", err))
	}
	shared.RespondError(w, http.StatusInternalServerError, "Internal server error", "")
}
