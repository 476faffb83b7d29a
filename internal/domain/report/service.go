package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cogwell/cogniscreen/internal/domain/actor"
	"github.com/cogwell/cogniscreen/internal/domain/result"
	"github.com/cogwell/cogniscreen/internal/domain/scoring"
)

// Placeholder identity substituted when a result's owning actor is missing.
// The report tolerates orphaned records rather than failing wholesale.
const (
	unknownName  = "Unknown User"
	unknownEmail = "Unknown"
)

// Gateway is the slice of the result store the reporter reads from. Both
// operations are gated on the elevated role by the store itself.
type Gateway interface {
	ListAll(ctx context.Context) ([]result.Result, error)
	ListActors(ctx context.Context) ([]actor.Actor, error)
}

// Service computes the operator dashboard projection.
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewService creates an aggregation reporter.
func NewService(gateway Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gateway: gateway, logger: logger}
}

// Overview fetches all actors and results, joins each result to its owner,
// tallies per-level counts and sorts entries newest-first. Read-only;
// consistency is snapshot-at-read, a concurrent insert may be missed.
func (s *Service) Overview(ctx context.Context) (*AggregateView, error) {
	actors, err := s.gateway.ListActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading actors: %w", err)
	}
	results, err := s.gateway.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading results: %w", err)
	}

	byID := make(map[string]actor.Actor, len(actors))
	for _, a := range actors {
		byID[a.ID] = a
	}

	view := &AggregateView{
		TotalActors:      len(actors),
		TotalAssessments: len(results),
		Entries:          make([]Entry, 0, len(results)),
	}

	orphans := 0
	for _, res := range results {
		switch res.Level {
		case scoring.LevelLow:
			view.Counts.Low++
		case scoring.LevelModerate:
			view.Counts.Moderate++
		case scoring.LevelHigh:
			view.Counts.High++
		}

		entry := Entry{Result: res, ActorName: unknownName, ActorEmail: unknownEmail}
		if owner, ok := byID[res.ActorID]; ok {
			entry.ActorName = owner.DisplayName
			entry.ActorEmail = owner.Email
		} else {
			orphans++
		}
		view.Entries = append(view.Entries, entry)
	}

	sort.Slice(view.Entries, func(i, j int) bool {
		return view.Entries[i].Result.CreatedAt.After(view.Entries[j].Result.CreatedAt)
	})

	if orphans > 0 {
		s.logger.Warn("results with no matching actor", "count", orphans)
	}
	return view, nil
}
