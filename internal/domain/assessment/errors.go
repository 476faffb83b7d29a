package assessment

import "errors"

var (
	// ErrSessionNotFound indicates the session doesn't exist or isn't
	// visible to the caller.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidStageTransition indicates a submission for a stage other
	// than the session's current one. The session is left unchanged; the
	// caller should re-fetch the current stage and retry.
	ErrInvalidStageTransition = errors.New("invalid stage transition")
	// ErrIncompletePayload indicates stage data failing its completeness
	// predicate. The session is left unchanged; the caller re-prompts.
	ErrIncompletePayload = errors.New("incomplete stage payload")
	// ErrSessionFinished indicates a submission against a session already
	// in a terminal state.
	ErrSessionFinished = errors.New("session already finished")
)
