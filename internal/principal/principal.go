// Package principal carries the authenticated identity through request
// context. Every core operation receives the principal explicitly; there is
// no ambient current-user state.
package principal

import "context"

type Kind string

const (
	KindFarmer   Kind = "farmer"
	KindCustomer Kind = "customer"
)

// Principal is a stable identity-provider subject plus its profile variant.
type Principal struct {
	ID    string
	Kind  Kind
	Email string
}

func (p Principal) IsFarmer() bool   { return p.Kind == KindFarmer }
func (p Principal) IsCustomer() bool { return p.Kind == KindCustomer }

type ctxKey string

const principalKey ctxKey = "principal"

// WithPrincipal sets the authenticated principal into context (called by
// middleware).
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext retrieves the principal safely.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
