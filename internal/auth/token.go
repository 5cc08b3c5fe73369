package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskforge/taskforge/internal/shared"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the payload a taskforge token carries.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates the compact credentials issued after
// signup and signin. The signing secret is process-wide configuration,
// injected once at construction.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager constructs a TokenManager. A non-positive ttl falls
// back to DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithNow overrides the manager clock for testing.
func (m *TokenManager) WithNow(fn func() time.Time) {
	if fn != nil {
		m.now = fn
	}
}

// Issue produces a signed token embedding the identity and its validity
// window.
func (m *TokenManager) Issue(id shared.Identity) (string, error) {
	issuedAt := m.now()
	claims := Claims{
		UserID: id.UserID,
		Email:  id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and validity window and returns
// the identity it attests to. Expiry surfaces as shared.ErrTokenExpired;
// every other failure, including a signature from a different key,
// surfaces as shared.ErrTokenMalformed.
func (m *TokenManager) Verify(tokenStr string) (shared.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return shared.Identity{}, shared.ErrTokenExpired
		}
		return shared.Identity{}, shared.ErrTokenMalformed
	}
	if !token.Valid {
		return shared.Identity{}, shared.ErrTokenMalformed
	}
	return shared.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
