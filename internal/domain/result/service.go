package result

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cogwell/cogniscreen/internal/access"
	"github.com/cogwell/cogniscreen/internal/domain/actor"
	"github.com/cogwell/cogniscreen/internal/domain/scoring"
	"github.com/google/uuid"
)

// Service is the store gateway for assessment results. Ownership of a write is
// always taken from the authenticated identity in the call context, never from
// caller-supplied data.
type Service struct {
	results ResultRepository
	actors  ActorRepository
	policy  AccessPolicy
	logger  *slog.Logger
}

// NewService creates a result store gateway.
func NewService(results ResultRepository, actors ActorRepository, policy AccessPolicy, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		results: results,
		actors:  actors,
		policy:  policy,
		logger:  logger,
	}
}

// Insert persists a scored candidate, assigning identifier, timestamp and
// ownership. The write is atomic: the result is either fully stored with a new
// identifier or not stored at all.
func (s *Service) Insert(ctx context.Context, candidate scoring.Candidate) (*Result, error) {
	actorID, ok := access.ActorFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	res := &Result{
		ID:          uuid.NewString(),
		ActorID:     actorID,
		VoiceScore:  candidate.VoiceScore,
		MemoryScore: candidate.MemoryScore,
		SurveyScore: candidate.SurveyScore,
		Level:       candidate.Level,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.results.Insert(ctx, res); err != nil {
		return nil, fmt.Errorf("inserting result: %w", err)
	}

	s.logger.Info("assessment result stored",
		"result_id", res.ID,
		"actor_id", res.ActorID,
		"level", res.Level,
	)
	return res, nil
}

// ListForActor returns the given actor's results. Callers may read their own
// records; reading another actor's requires the elevated role.
func (s *Service) ListForActor(ctx context.Context, actorID string) ([]Result, error) {
	caller, ok := access.ActorFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	if caller != actorID {
		if err := s.requireElevated(ctx, caller); err != nil {
			return nil, err
		}
	}

	results, err := s.results.ListByActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	return results, nil
}

// ListAll returns every stored result. Elevated role required.
func (s *Service) ListAll(ctx context.Context) ([]Result, error) {
	caller, ok := access.ActorFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if err := s.requireElevated(ctx, caller); err != nil {
		return nil, err
	}

	results, err := s.results.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	return results, nil
}

// ListActors returns every known actor. Elevated role required.
func (s *Service) ListActors(ctx context.Context) ([]actor.Actor, error) {
	caller, ok := access.ActorFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if err := s.requireElevated(ctx, caller); err != nil {
		return nil, err
	}

	actors, err := s.actors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing actors: %w", err)
	}
	return actors, nil
}

func (s *Service) requireElevated(ctx context.Context, actorID string) error {
	elevated, err := s.policy.IsElevated(ctx, actorID)
	if err != nil {
		return fmt.Errorf("checking access: %w", err)
	}
	if !elevated {
		return ErrPermissionDenied
	}
	return nil
}
