package assessment

import (
	"context"

	"github.com/cogwell/cogniscreen/internal/domain/result"
	"github.com/cogwell/cogniscreen/internal/domain/scoring"
	"github.com/cogwell/cogniscreen/internal/domain/stage"
)

// Scorer reduces three well-formed stage payloads to a result candidate.
type Scorer interface {
	Score(voice *stage.VoicePayload, memory *stage.MemoryPayload, survey *stage.SurveyPayload) (scoring.Candidate, error)
}

// ResultGateway persists a scored candidate on behalf of the authenticated
// identity in the call context.
type ResultGateway interface {
	Insert(ctx context.Context, candidate scoring.Candidate) (*result.Result, error)
}
