// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, HTTP client initialization, token
// issuing and verification, and trace id generation.
package utils

import (
	"context"
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

var (
	// UserIDCtxKey stores the numeric id of the authenticated caller.
	UserIDCtxKey = contextKey("userID")
	// LoginCtxKey stores the login (token subject) of the authenticated caller.
	LoginCtxKey = contextKey("login")
	// TokenCtxKey stores the raw bearer token of the authenticated caller.
	TokenCtxKey = contextKey("token")
	// TraceIDCtxKey stores the trace id of the current request.
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetLoginFromContext retrieves the caller's login from the context.
func GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginCtxKey).(string)
	return login, ok && login != ""
}

// GetTokenFromContext retrieves the caller's raw bearer token.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// GetTraceIDFromContext retrieves the trace id; it is empty when unset.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
