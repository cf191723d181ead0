package context

import (
	"context"

	"dispatch/internal/domain/entity"
)

// KeyPrincipal is the key for storing the authenticated principal in context.
const KeyPrincipal ContextKey = "principal"

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipal extracts the authenticated principal, or nil when the request is anonymous.
func GetPrincipal(ctx context.Context) *entity.Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}

// ActorID returns the executor id of the authenticated principal, if any.
func ActorID(ctx context.Context) *int {
	principal := GetPrincipal(ctx)
	if principal == nil || principal.ExecID == 0 {
		return nil
	}
	id := principal.ExecID

	return &id
}
