package access

import "context"

type actorKey struct{}

// WithActor stores the authenticated actor ID in the context. The identity
// collaborator (transport middleware, tests) is the only writer.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorFromContext returns the authenticated actor ID, if any.
func ActorFromContext(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(actorKey{}).(string)
	if actorID == "" {
		return "", false
	}
	return actorID, ok
}
