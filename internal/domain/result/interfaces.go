package result

import (
	"context"

	"github.com/cogwell/cogniscreen/internal/domain/actor"
)

// ResultRepository provides persistence for assessment results.
type ResultRepository interface {
	Insert(ctx context.Context, res *Result) error
	ListByActor(ctx context.Context, actorID string) ([]Result, error)
	ListAll(ctx context.Context) ([]Result, error)
}

// ActorRepository provides read access to the identity collaborator's actors.
type ActorRepository interface {
	List(ctx context.Context) ([]actor.Actor, error)
}

// AccessPolicy decides whether an actor may read all actors' data.
type AccessPolicy interface {
	IsElevated(ctx context.Context, actorID string) (bool, error)
}
