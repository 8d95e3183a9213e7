package identity

import "context"

type actorContextKey struct{}

// ContextWithActor stores the acting principal in context. Mutating
// operations read their attribution from here.
func ContextWithActor(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, actorContextKey{}, p)
}

// ActorFromContext extracts the acting principal, or nil for anonymous.
func ActorFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(actorContextKey{}).(*Principal)
	return p
}
