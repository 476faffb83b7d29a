package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cogwell/cogniscreen/internal/access"
	"github.com/cogwell/cogniscreen/internal/domain/result"
	"github.com/cogwell/cogniscreen/internal/domain/stage"
	"github.com/google/uuid"
)

// Service drives assessment sessions through the fixed stage order. Sessions
// are held in memory; the service mutex only guards the shared map. Each
// session carries its own lock, so one session's scoring and result write
// never blocks progress on another.
type Service struct {
	scorer  Scorer
	gateway ResultGateway
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService creates an assessment session service.
func NewService(scorer Scorer, gateway ResultGateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		scorer:   scorer,
		gateway:  gateway,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Begin starts a new session for the authenticated actor at the first stage.
func (s *Service) Begin(ctx context.Context) (*View, error) {
	actorID, ok := access.ActorFromContext(ctx)
	if !ok {
		return nil, result.ErrNotAuthenticated
	}

	sess := &Session{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		State:     StateInProgress,
		Current:   stage.Order()[0],
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info("assessment started", "session_id", sess.ID, "actor_id", actorID)
	return viewOf(sess, nil), nil
}

// SubmitResult carries the outcome of an accepted submission.
type SubmitResult struct {
	View View
	// Result is set once the final stage is accepted and the write is
	// durable.
	Result *result.Result
}

// SubmitStage submits raw captured input for the session's current stage. A
// rejected submission leaves the session unchanged. Accepting the final stage
// scores the session exactly once and persists the result before the session
// is reported complete; if the write fails the session stays at the final
// stage so the caller can retry.
func (s *Service) SubmitStage(ctx context.Context, sessionID string, kind stage.Kind, raw stage.RawInput) (*SubmitResult, error) {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.State != StateInProgress {
		return nil, ErrSessionFinished
	}

	if !stage.Valid(kind) || kind != sess.Current {
		return nil, ErrInvalidStageTransition
	}

	payload, err := stage.Normalize(kind, raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing payload: %w", err)
	}
	if !payload.Complete() {
		return nil, ErrIncompletePayload
	}

	record := StageRecord{
		Kind:        kind,
		Payload:     payload,
		SubmittedAt: time.Now().UTC(),
	}

	next, hasNext := stage.Next(kind)
	if hasNext {
		sess.Records = append(sess.Records, record)
		sess.Current = next
		s.logger.Info("stage accepted",
			"session_id", sess.ID,
			"stage", kind,
			"next", next,
		)
		return &SubmitResult{View: *viewOf(sess, nil)}, nil
	}

	// Final stage: score and persist before the session is reported
	// complete. Nothing is mutated until the write is durable.
	res, err := s.finish(ctx, sess, record)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess.Records = append(sess.Records, record)
	sess.Current = ""
	sess.State = StateComplete
	sess.CompletedAt = &now

	s.logger.Info("assessment complete",
		"session_id", sess.ID,
		"result_id", res.ID,
		"level", res.Level,
	)
	return &SubmitResult{View: *viewOf(sess, res), Result: res}, nil
}

// Abandon terminates an in-progress session. Stage data is retained in memory
// but never scored. A stage timer expiring without a well-formed payload maps
// here; the engine never forges default payloads.
func (s *Service) Abandon(ctx context.Context, sessionID string) error {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.State {
	case StateInProgress:
		sess.State = StateAbandoned
		sess.Current = ""
		s.logger.Info("assessment abandoned", "session_id", sess.ID)
		return nil
	case StateAbandoned:
		return nil
	default:
		return ErrSessionFinished
	}
}

// Get returns the caller's view of a session.
func (s *Service) Get(ctx context.Context, sessionID string) (*View, error) {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return viewOf(sess, nil), nil
}

// lookup resolves a session visible to the calling actor. A session owned by
// someone else reads as not found. ActorID is immutable after Begin, so the
// ownership check needs no session lock.
func (s *Service) lookup(ctx context.Context, sessionID string) (*Session, error) {
	actorID, ok := access.ActorFromContext(ctx)
	if !ok {
		return nil, result.ErrNotAuthenticated
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok || sess.ActorID != actorID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) finish(ctx context.Context, sess *Session, surveyRecord StageRecord) (*result.Result, error) {
	var voice *stage.VoicePayload
	var memory *stage.MemoryPayload
	var survey *stage.SurveyPayload

	records := append(append([]StageRecord{}, sess.Records...), surveyRecord)
	for _, rec := range records {
		switch p := rec.Payload.(type) {
		case stage.VoicePayload:
			voice = &p
		case stage.MemoryPayload:
			memory = &p
		case stage.SurveyPayload:
			survey = &p
		}
	}

	candidate, err := s.scorer.Score(voice, memory, survey)
	if err != nil {
		// The state machine guarantees three well-formed records here;
		// reaching this branch is a sequencing defect.
		s.logger.Error("scoring failed for completed session",
			"session_id", sess.ID,
			"error", err,
		)
		return nil, fmt.Errorf("scoring session: %w", err)
	}

	res, err := s.gateway.Insert(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("persisting result: %w", err)
	}
	return res, nil
}

func viewOf(sess *Session, res *result.Result) *View {
	completed := make([]stage.Kind, 0, len(sess.Records))
	for _, rec := range sess.Records {
		completed = append(completed, rec.Kind)
	}
	return &View{
		SessionID: sess.ID,
		State:     sess.State,
		Current:   sess.Current,
		Completed: completed,
		Result:    res,
	}
}
