package assessment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cogwell/cogniscreen/internal/access"
	"github.com/cogwell/cogniscreen/internal/domain/assessment"
	"github.com/cogwell/cogniscreen/internal/domain/result"
	"github.com/cogwell/cogniscreen/internal/domain/scoring"
	"github.com/cogwell/cogniscreen/internal/domain/stage"
	"github.com/cogwell/cogniscreen/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(resultsRepo *mocks.ResultRepository) *assessment.Service {
	actorsRepo := &mocks.ActorRepository{}
	policy := access.NewPolicy(actorsRepo, nil)
	gateway := result.NewService(resultsRepo, actorsRepo, policy, nil)
	engine := scoring.NewEngine(scoring.DefaultConfig(), nil)
	return assessment.NewService(engine, gateway, nil)
}

func actorCtx(actorID string) context.Context {
	return access.WithActor(context.Background(), actorID)
}

var (
	rawVoice  = stage.RawInput{PromptsRecorded: 3, SpeechSeconds: 45}
	rawMemory = stage.RawInput{Recalled: []string{"apple", "tiger", "ocean"}}
	rawSurvey = stage.RawInput{Answers: map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 0}}
)

func TestBeginRequiresIdentity(t *testing.T) {
	svc := newTestService(&mocks.ResultRepository{})

	_, err := svc.Begin(context.Background())
	require.ErrorIs(t, err, result.ErrNotAuthenticated)
}

func TestBeginStartsAtVoice(t *testing.T) {
	svc := newTestService(&mocks.ResultRepository{})

	view, err := svc.Begin(actorCtx("a1"))
	require.NoError(t, err)
	require.Equal(t, assessment.StateInProgress, view.State)
	require.Equal(t, stage.KindVoice, view.Current)
	require.Empty(t, view.Completed)
}

func TestSubmitOutOfOrderLeavesSessionUnchanged(t *testing.T) {
	svc := newTestService(&mocks.ResultRepository{})
	ctx := actorCtx("a1")

	view, err := svc.Begin(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitStage(ctx, view.SessionID, stage.KindMemory, rawMemory)
	require.ErrorIs(t, err, assessment.ErrInvalidStageTransition)

	_, err = svc.SubmitStage(ctx, view.SessionID, stage.KindSurvey, rawSurvey)
	require.ErrorIs(t, err, assessment.ErrInvalidStageTransition)

	_, err = svc.SubmitStage(ctx, view.SessionID, stage.Kind("typing"), stage.RawInput{})
	require.ErrorIs(t, err, assessment.ErrInvalidStageTransition)

	after, err := svc.Get(ctx, view.SessionID)
	require.NoError(t, err)
	require.Equal(t, stage.KindVoice, after.Current)
	require.Empty(t, after.Completed)
}

func TestSubmitIncompletePayloadLeavesSessionUnchanged(t *testing.T) {
	svc := newTestService(&mocks.ResultRepository{})
	ctx := actorCtx("a1")

	view, err := svc.Begin(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitStage(ctx, view.SessionID, stage.KindVoice, stage.RawInput{PromptsRecorded: 1})
	require.ErrorIs(t, err, assessment.ErrIncompletePayload)

	after, err := svc.Get(ctx, view.SessionID)
	require.NoError(t, err)
	require.Equal(t, stage.KindVoice, after.Current)
	require.Empty(t, after.Completed)
}

func TestCompleteAfterExactlyThreeSubmissions(t *testing.T) {
	resultsRepo := &mocks.ResultRepository{}
	resultsRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(resultsRepo)
	ctx := actorCtx("a1")

	view, err := svc.Begin(ctx)
	require.NoError(t, err)
	sessionID := view.SessionID

	out, err := svc.SubmitStage(ctx, sessionID, stage.KindVoice, rawVoice)
	require.NoError(t, err)
	require.Equal(t, assessment.StateInProgress, out.View.State)
	require.Equal(t, stage.KindMemory, out.View.Current)
	require.Nil(t, out.Result)

	out, err = svc.SubmitStage(ctx, sessionID, stage.KindMemory, rawMemory)
	require.NoError(t, err)
	require.Equal(t, assessment.StateInProgress, out.View.State)
	require.Equal(t, stage.KindSurvey, out.View.Current)
	require.Nil(t, out.Result)

	out, err = svc.SubmitStage(ctx, sessionID, stage.KindSurvey, rawSurvey)
	require.NoError(t, err)
	require.Equal(t, assessment.StateComplete, out.View.State)
	require.NotNil(t, out.Result)

	// Voice 80 (full completion, half fluency), memory 37.5, survey 100
	// with equal weights combines to ~72.5.
	require.InDelta(t, 80, out.Result.VoiceScore, 1e-9)
	require.InDelta(t, 37.5, out.Result.MemoryScore, 1e-9)
	require.InDelta(t, 100, out.Result.SurveyScore, 1e-9)
	require.Equal(t, scoring.LevelLow, out.Result.Level)
	require.Equal(t, "a1", out.Result.ActorID)

	resultsRepo.AssertNumberOfCalls(t, "Insert", 1)

	// A fourth submission is rejected.
	_, err = svc.SubmitStage(ctx, sessionID, stage.KindSurvey, rawSurvey)
	require.ErrorIs(t, err, assessment.ErrSessionFinished)
	resultsRepo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestResultWriteFailureKeepsSessionRetryable(t *testing.T) {
	resultsRepo := &mocks.ResultRepository{}
	resultsRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("store offline")).Once()
	resultsRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	svc := newTestService(resultsRepo)
	ctx := actorCtx("a1")

	view, err := svc.Begin(ctx)
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.SubmitStage(ctx, sessionID, stage.KindVoice, rawVoice)
	require.NoError(t, err)
	_, err = svc.SubmitStage(ctx, sessionID, stage.KindMemory, rawMemory)
	require.NoError(t, err)

	_, err = svc.SubmitStage(ctx, sessionID, stage.KindSurvey, rawSurvey)
	require.Error(t, err)

	// The session is not reported complete until the write is durable.
	after, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, assessment.StateInProgress, after.State)
	require.Equal(t, stage.KindSurvey, after.Current)

	out, err := svc.SubmitStage(ctx, sessionID, stage.KindSurvey, rawSurvey)
	require.NoError(t, err)
	require.Equal(t, assessment.StateComplete, out.View.State)
	resultsRepo.AssertExpectations(t)
}

func TestAbandonIsTerminalAndNeverScored(t *testing.T) {
	resultsRepo := &mocks.ResultRepository{}
	svc := newTestService(resultsRepo)
	ctx := actorCtx("a1")

	view, err := svc.Begin(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitStage(ctx, view.SessionID, stage.KindVoice, rawVoice)
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx, view.SessionID))

	// Abandon is idempotent; further submissions are rejected.
	require.NoError(t, svc.Abandon(ctx, view.SessionID))
	_, err = svc.SubmitStage(ctx, view.SessionID, stage.KindMemory, rawMemory)
	require.ErrorIs(t, err, assessment.ErrSessionFinished)

	after, err := svc.Get(ctx, view.SessionID)
	require.NoError(t, err)
	require.Equal(t, assessment.StateAbandoned, after.State)
	resultsRepo.AssertNotCalled(t, "Insert")
}

func TestAbandonCompletedSessionRejected(t *testing.T) {
	resultsRepo := &mocks.ResultRepository{}
	resultsRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(resultsRepo)
	ctx := actorCtx("a1")

	view, err := svc.Begin(ctx)
	require.NoError(t, err)
	_, err = svc.SubmitStage(ctx, view.SessionID, stage.KindVoice, rawVoice)
	require.NoError(t, err)
	_, err = svc.SubmitStage(ctx, view.SessionID, stage.KindMemory, rawMemory)
	require.NoError(t, err)
	_, err = svc.SubmitStage(ctx, view.SessionID, stage.KindSurvey, rawSurvey)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Abandon(ctx, view.SessionID), assessment.ErrSessionFinished)
}

func TestSessionsAreInvisibleToOtherActors(t *testing.T) {
	svc := newTestService(&mocks.ResultRepository{})

	view, err := svc.Begin(actorCtx("a1"))
	require.NoError(t, err)

	_, err = svc.Get(actorCtx("a2"), view.SessionID)
	require.ErrorIs(t, err, assessment.ErrSessionNotFound)

	_, err = svc.SubmitStage(actorCtx("a2"), view.SessionID, stage.KindVoice, rawVoice)
	require.ErrorIs(t, err, assessment.ErrSessionNotFound)

	_, err = svc.Get(context.Background(), view.SessionID)
	require.ErrorIs(t, err, result.ErrNotAuthenticated)
}

func TestSessionsProgressIndependently(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	resultsRepo := &mocks.ResultRepository{}
	resultsRepo.On("Insert", mock.Anything, mock.MatchedBy(func(res *result.Result) bool {
		return res.ActorID == "a1"
	})).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(nil).Once()
	resultsRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(resultsRepo)

	slowCtx := actorCtx("a1")
	slow, err := svc.Begin(slowCtx)
	require.NoError(t, err)
	_, err = svc.SubmitStage(slowCtx, slow.SessionID, stage.KindVoice, rawVoice)
	require.NoError(t, err)
	_, err = svc.SubmitStage(slowCtx, slow.SessionID, stage.KindMemory, rawMemory)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.SubmitStage(slowCtx, slow.SessionID, stage.KindSurvey, rawSurvey)
		done <- err
	}()
	<-entered

	// While the slow session's result write is in flight, another session
	// runs start to finish.
	fastCtx := actorCtx("b1")
	fast, err := svc.Begin(fastCtx)
	require.NoError(t, err)
	_, err = svc.SubmitStage(fastCtx, fast.SessionID, stage.KindVoice, rawVoice)
	require.NoError(t, err)
	_, err = svc.SubmitStage(fastCtx, fast.SessionID, stage.KindMemory, rawMemory)
	require.NoError(t, err)
	out, err := svc.SubmitStage(fastCtx, fast.SessionID, stage.KindSurvey, rawSurvey)
	require.NoError(t, err)
	require.Equal(t, assessment.StateComplete, out.View.State)

	close(release)
	require.NoError(t, <-done)
}
