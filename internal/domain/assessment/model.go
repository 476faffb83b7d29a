package assessment

import (
	"sync"
	"time"

	"github.com/cogwell/cogniscreen/internal/domain/result"
	"github.com/cogwell/cogniscreen/internal/domain/stage"
)

// State is the lifecycle state of an assessment session.
type State string

const (
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
	StateAbandoned  State = "abandoned"
)

// StageRecord is one accepted, normalized stage submission.
type StageRecord struct {
	Kind        stage.Kind    `json:"kind"`
	Payload     stage.Payload `json:"payload"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

// Session is one actor's run through the ordered stages. Sessions live in
// memory only; an in-progress session lost before completion is an accepted
// loss. A session is mutated solely by completing its current stage, under
// its own lock, so sessions progress independently of each other.
type Session struct {
	mu sync.Mutex

	ID          string        `json:"id"`
	ActorID     string        `json:"actor_id"`
	State       State         `json:"state"`
	Current     stage.Kind    `json:"current,omitempty"`
	Records     []StageRecord `json:"records"`
	CreatedAt   time.Time     `json:"created_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// View is the plain-data projection handed to the presentation collaborator.
type View struct {
	SessionID string         `json:"session_id"`
	State     State          `json:"state"`
	Current   stage.Kind     `json:"current,omitempty"`
	Completed []stage.Kind   `json:"completed"`
	Result    *result.Result `json:"result,omitempty"`
}
