package access

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cogwell/cogniscreen/internal/domain/actor"
)

// RoleSource supplies the current role set for an actor. Role assignment is
// external mutable state, so the policy queries it on every gated call.
type RoleSource interface {
	RolesOf(ctx context.Context, actorID string) ([]actor.Role, error)
}

// Policy decides whether an actor may read other actors' data.
type Policy struct {
	roles    RoleSource
	elevated actor.Role
	logger   *slog.Logger
}

// NewPolicy creates a policy granting elevation to holders of the admin role.
func NewPolicy(roles RoleSource, logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{roles: roles, elevated: actor.RoleAdmin, logger: logger}
}

// IsElevated reports whether the actor's role set contains the elevated role.
// The role set is fetched fresh on every call; grants are never cached. An
// absent identity is never elevated.
func (p *Policy) IsElevated(ctx context.Context, actorID string) (bool, error) {
	if actorID == "" {
		return false, nil
	}

	roles, err := p.roles.RolesOf(ctx, actorID)
	if err != nil {
		return false, fmt.Errorf("loading roles: %w", err)
	}

	for _, role := range roles {
		if role == p.elevated {
			return true, nil
		}
	}
	return false, nil
}
