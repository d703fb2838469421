package auth

import "context"

// Role labels as written by the external auth system.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the result of resolving an inbound request credential.
type Identity struct {
	UserID        string
	Role          string
	EmailVerified bool
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

type contextKey struct{}

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// FromContext returns the identity stored in the context, or nil when the
// request was not authenticated.
func FromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(contextKey{}).(*Identity)
	return identity
}
