package repository

import (
	"context"

	"github.com/cogwell/cogniscreen/internal/domain/actor"
	"github.com/cogwell/cogniscreen/internal/domain/result"
)

// ActorRepository manages actor persistence. Actors are written by the
// identity collaborator on first sign-in; the assessment engine only reads.
type ActorRepository interface {
	Create(ctx context.Context, a *actor.Actor) error
	Get(ctx context.Context, id string) (*actor.Actor, error)
	List(ctx context.Context) ([]actor.Actor, error)
	RolesOf(ctx context.Context, actorID string) ([]actor.Role, error)
	GrantRole(ctx context.Context, actorID string, role actor.Role) error
}

// ResultRepository manages assessment result persistence. There is no update
// or delete: results are an append-only log.
type ResultRepository interface {
	Insert(ctx context.Context, res *result.Result) error
	ListByActor(ctx context.Context, actorID string) ([]result.Result, error)
	ListAll(ctx context.Context) ([]result.Result, error)
}

// TokenRepository resolves API bearer tokens to actor identities.
type TokenRepository interface {
	Save(ctx context.Context, tokenHash, actorID, description string) error
	Resolve(ctx context.Context, tokenHash string) (string, error)
}
