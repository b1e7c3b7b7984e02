package identity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/identity"
)

// TestValidatePasswordStrength tests the password policy
func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		expectErr string
	}{
		{"valid password", "Abc12345", ""},
		{"valid long password", "CorrectHorse99battery", ""},
		{"too short", "Ab1", "at least 8 characters"},
		{"empty", "", "at least 8 characters"},
		{"no uppercase", "abc12345", "uppercase"},
		{"no lowercase", "ABC12345", "lowercase"},
		{"no number", "Abcdefgh", "number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := identity.ValidatePasswordStrength(tt.password)
			if tt.expectErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectErr)
			}
		})
	}
}
