// Package utils holds small helpers shared by the client and the server:
// request-scoped values, body hashing, JSON over HTTP, the remote HTTP
// client, bearer tokens, trace IDs and the clock.
package utils

import "context"

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the owner of the request.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext returns the owner stored by [WithUserID]. ok is false
// when there is none or it is empty.
func GetUserIDFromContext(ctx context.Context) (userID string, ok bool) {
	userID, _ = ctx.Value(userIDKey{}).(string)
	return userID, userID != ""
}
