// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT session tokens,
// email masking and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/smart-plant-guard/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the authenticated [models.Session]
// in the request context. The auth middleware writes it after the bearer
// token has been verified.
var SessionCtxKey = contextKey("session")

// AccountActiveCtxKey holds the is_active flag read from the users row for
// the current request.
var AccountActiveCtxKey = contextKey("accountActive")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session from the context.
//
// Returns ok == false when no session was stored or the value has an
// unexpected type.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// GetUserIDFromContext is a shortcut for the session's user id.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return 0, false
	}
	return session.UserID, true
}

// WithAccountActive stores the account status for the current request.
func WithAccountActive(ctx context.Context, active bool) context.Context {
	return context.WithValue(ctx, AccountActiveCtxKey, active)
}

// GetAccountActiveFromContext returns the account status. A missing value
// reads as inactive.
func GetAccountActiveFromContext(ctx context.Context) bool {
	active, _ := ctx.Value(AccountActiveCtxKey).(bool)
	return active
}
