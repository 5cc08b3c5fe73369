package auth

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRegex = regexp.MustCompile(`^[+]?[\d\s\-()]{10,15}$`)

	lowerRegex = regexp.MustCompile(`[a-z]`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`\d`)
)

// Password strength failures, in check order.
var (
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain at least one number")
)

// ValidEmail reports whether s looks like local-part@domain with a dot
// in the domain. Syntactic check only, no MX lookup.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidMobile reports whether s, with internal whitespace stripped, is
// an optional + followed by 10-15 characters of digits, spaces, hyphens
// or parentheses.
func ValidMobile(s string) bool {
	return mobileRegex.MatchString(strings.ReplaceAll(s, " ", ""))
}

// ValidatePassword checks password strength and returns the first
// failing rule: length, lowercase, uppercase, digit. Nil means valid.
func ValidatePassword(s string) error {
	if len(s) < 8 {
		return ErrPasswordTooShort
	}
	if !lowerRegex.MatchString(s) {
		return ErrPasswordNoLowercase
	}
	if !upperRegex.MatchString(s) {
		return ErrPasswordNoUppercase
	}
	if !digitRegex.MatchString(s) {
		return ErrPasswordNoDigit
	}
	return nil
}
