package report

import "github.com/cogwell/cogniscreen/internal/domain/result"

// Entry is one assessment result joined with its owning actor's identity.
type Entry struct {
	Result     result.Result `json:"result"`
	ActorName  string        `json:"actor_name"`
	ActorEmail string        `json:"actor_email"`
}

// LevelCounts tallies stored results per risk level.
type LevelCounts struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// AggregateView is the cross-actor summary for the operator dashboard. It is
// recomputed on every request and never stored.
type AggregateView struct {
	TotalActors      int         `json:"total_actors"`
	TotalAssessments int         `json:"total_assessments"`
	Counts           LevelCounts `json:"counts"`
	Entries          []Entry     `json:"entries"`
}
