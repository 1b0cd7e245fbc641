package domain

import (
	"fmt"
	"unicode"
)

const (
	minPasswordLength = 8
	// bcrypt truncates input beyond 72 bytes, so longer passwords are rejected
	// rather than silently weakened.
	maxPasswordLength = 72
)

// ValidatePassword enforces the baseline signup password policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be <= %d characters", ErrInvalidInput, maxPasswordLength)
	}

	var (
		hasUpper bool
		hasLower bool
		hasDigit bool
	)
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("%w: password must include upper, lower and digit", ErrInvalidInput)
	}
	return nil
}
