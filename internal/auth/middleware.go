package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskforge/taskforge/internal/shared"
)

// Gate authenticates inbound requests from their bearer token and
// attaches the verified identity to the request context.
type Gate struct {
	logger *slog.Logger
	tokens *TokenManager
}

// NewGate constructs a Gate.
func NewGate(logger *slog.Logger, tokens *TokenManager) *Gate {
	return &Gate{logger: logger, tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token. Missing,
// expired and malformed tokens each get their own 401 message.
func (g *Gate) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := g.authenticate(r)
		if err != nil {
			switch {
			case errors.Is(err, shared.ErrMissingToken):
				shared.RespondError(w, http.StatusUnauthorized, "Access token required", "Please provide a valid authentication token")
			case errors.Is(err, shared.ErrTokenExpired):
				shared.RespondError(w, http.StatusUnauthorized, "Token expired", "Your session has expired. Please login again.")
			default:
				shared.RespondError(w, http.StatusUnauthorized, "Invalid token", "Please provide a valid authentication token")
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), id)))
	})
}

// OptionalAuth attaches an identity when a valid token is present and
// passes the request through untouched otherwise. Authentication is
// advisory here, never a rejection.
func (g *Gate) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, err := g.authenticate(r); err == nil {
			r = r.WithContext(shared.ContextWithIdentity(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gate) authenticate(r *http.Request) (shared.Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return shared.Identity{}, shared.ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return shared.Identity{}, shared.ErrMissingToken
	}
	id, err := g.tokens.Verify(parts[1])
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("token verification failed", slog.Any("error", err))
		}
		return shared.Identity{}, err
	}
	return id, nil
}
