package result

import (
	"time"

	"github.com/cogwell/cogniscreen/internal/domain/scoring"
)

// Result is the persisted outcome of a completed assessment. Results are
// append-only: once written they are never updated or deleted.
type Result struct {
	ID          string        `json:"id"`
	ActorID     string        `json:"actor_id"`
	VoiceScore  float64       `json:"voice_score"`
	MemoryScore float64       `json:"memory_score"`
	SurveyScore float64       `json:"survey_score"`
	Level       scoring.Level `json:"level"`
	CreatedAt   time.Time     `json:"created_at"`
}
