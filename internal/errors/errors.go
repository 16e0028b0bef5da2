package errors

import (
	"errors"
	"fmt"
)

// Common error types for the OAuth2 client
var (
	// Authorization flow errors
	ErrStateMismatch   = errors.New("state mismatch")
	ErrMissingAuthCode = errors.New("missing authorization code")
	ErrProviderError   = errors.New("provider reported an authorization error")
	ErrTokenExchange   = errors.New("token exchange failed")

	// Session errors
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidSessionCookie = errors.New("invalid session cookie")

	// General errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInternal         = errors.New("internal error")
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
