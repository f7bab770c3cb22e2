// Package identity carries the authenticated caller of a request.
package identity

import "context"

// Identity is built once per request by the auth middleware and never
// mutated afterwards.
type Identity struct {
	SellerID   int64
	Email      string
	Name       string
	ExternalID string
	Role       string
}

func (i Identity) IsZero() bool {
	return i.SellerID == 0
}

type contextKey struct{}

func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	if !ok || id.IsZero() {
		return Identity{}, false
	}
	return id, true
}
