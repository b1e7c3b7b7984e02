package identity

import (
	"fmt"
	"time"
	"unicode"
)

// Identity is the authenticatable principal: the portfolio administrator.
// PhoneNumber is the primary login identifier; Username is an optional
// secondary one. Both are unique across all identities.
type Identity struct {
	ID             string    `json:"id,omitempty"`       // Unique identifier, generated at creation
	PhoneNumber    string    `json:"phone,omitempty"`    // Primary login identifier
	Username       string    `json:"username,omitempty"` // Optional secondary login identifier
	CredentialHash string    `json:"-"`                  // Hashed password - never serialize
	FullName       string    `json:"fullName,omitempty"` // Display name, not security relevant
	Active         bool      `json:"active,omitempty"`   // Inactive identities fail authentication
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}
