package validation

import (
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// ValidEmail reports whether the email looks like an address.
// Deliberately loose: local@domain with a non-empty part on each side.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// ValidatePassword checks password strength. Returns "" when valid,
// otherwise the user-facing reason.
func ValidatePassword(password string) string {
	if len(password) < MinPasswordLength {
		return "Password must be at least 6 characters"
	}
	return ""
}

// ParseDate parses an optional YYYY-MM-DD value. An empty string is a
// valid "no date"; anything else must parse exactly or an error is
// returned so the caller rejects the write instead of coercing.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
