package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last@example.co.uk", "user+tag@mail.example.org"}
	for _, email := range valid {
		require.True(t, ValidEmail(email), "expected %q valid", email)
	}

	invalid := []string{"not-an-email", "missing@dot", "two words@example.com", "@example.com", "user@"}
	for _, email := range invalid {
		require.False(t, ValidEmail(email), "expected %q invalid", email)
	}
}

func TestValidMobile(t *testing.T) {
	valid := []string{"+1 (555) 123-4567", "0812345678", "+442071234567", "555-123-4567"}
	for _, mobile := range valid {
		require.True(t, ValidMobile(mobile), "expected %q valid", mobile)
	}

	invalid := []string{"12345", "abcdefghij", "+12345678901234567890", ""}
	for _, mobile := range invalid {
		require.False(t, ValidMobile(mobile), "expected %q invalid", mobile)
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		want     error
	}{
		{"short1A", ErrPasswordTooShort},
		{"ALLUPPERCASE1", ErrPasswordNoLowercase},
		{"alllowercase1", ErrPasswordNoUppercase},
		{"NoDigitsHere", ErrPasswordNoDigit},
		{"Valid123", nil},
	}
	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.want == nil {
			require.NoError(t, err, "password %q", tc.password)
		} else {
			require.ErrorIs(t, err, tc.want, "password %q", tc.password)
		}
	}
}

func TestValidatePasswordReasonOrder(t *testing.T) {
	// Length wins over every other failure.
	require.ErrorIs(t, ValidatePassword("A1"), ErrPasswordTooShort)
	// Lowercase is reported before uppercase/digit.
	require.ErrorIs(t, ValidatePassword("12345678"), ErrPasswordNoLowercase)
}
