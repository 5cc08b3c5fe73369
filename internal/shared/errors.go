package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail occurs when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateMobile occurs when the mobile number is already registered.
	ErrDuplicateMobile = errors.New("mobile number already registered")
	// ErrTokenExpired occurs when a token's expiry is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed occurs when a token fails structural or signature checks.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrMissingToken occurs when a request carries no usable bearer token.
	ErrMissingToken = errors.New("access token required")
)
