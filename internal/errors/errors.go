package errors

import (
	"errors"
	"fmt"
)

// Common error types for the portfolio API
var (
	// Authentication errors. Unknown identifier, wrong password and
	// deactivated accounts all surface as ErrInvalidCredentials so a caller
	// cannot probe which identifiers exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors. ErrTokenExpired means the token was structurally and
	// cryptographically sound but its lifetime has passed; ErrTokenInvalid
	// covers a bad signature or a malformed token.
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")

	// Identity errors
	ErrDuplicateIdentifier = errors.New("identifier already registered")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
