// internal/auth/context.go
//
// Request-scoped identity.
//
// Upstream middleware (or a test) attaches the authenticated user ID and
// the credentials granted to it; host.User reads them back.
//
// Usage
// -----
//     ctx = auth.WithUser(ctx, 123)
//     ctx = auth.WithCredentials(ctx, "news_admin", "news_post")
//
//     id, ok := auth.UserID(ctx)        // 123, true
//     creds  := auth.Credentials(ctx)   // [news_admin news_post]

package auth

import "context"

// keys are unexported to avoid context-key collisions.
type (
	userKey  struct{}
	credsKey struct{}
)

// WithUser returns a new context carrying the given userID.
func WithUser(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserID extracts the userID from ctx.  It returns (0, false) if no user is set.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userKey{}).(int64)
	return id, ok
}

// WithCredentials returns a new context that adds creds to any already
// attached.
func WithCredentials(ctx context.Context, creds ...string) context.Context {
	all := append(Credentials(ctx), creds...)
	return context.WithValue(ctx, credsKey{}, all)
}

// Credentials returns a copy of the credentials attached to ctx.
func Credentials(ctx context.Context) []string {
	c, _ := ctx.Value(credsKey{}).([]string)
	out := make([]string, len(c))
	copy(out, c)
	return out
}
