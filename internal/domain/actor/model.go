package actor

import "time"

// Role names an access level granted to an actor.
type Role string

const (
	// RoleAdmin grants access to all actors' data and aggregate statistics.
	RoleAdmin Role = "admin"
)

// Actor represents an authenticated user. Actors are created by the identity
// collaborator on first sign-in; the assessment engine only reads them.
type Actor struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	Roles       []Role    `json:"roles,omitempty"`
}

// HasRole reports whether the actor's role set contains the given role.
func (a *Actor) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
