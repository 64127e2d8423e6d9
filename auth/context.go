// Package auth, as part of the authentication module.
// This file, `context.go`, carries the authenticated user id on the request's context.Context.
// Only the Gate writes it; handlers read it.
package auth

import (
	"context"
)

// `contextKey` is unexported so no other package can collide with or forge the key.
type contextKey string

const (
	userIDContextKey contextKey = "auth_user_id"
)

// WithUserID returns a child context carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext extracts the user id stored by WithUserID.
// An empty id counts as absent.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}
