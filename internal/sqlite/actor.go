package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cogwell/cogniscreen/internal/domain/actor"
	"github.com/cogwell/cogniscreen/internal/repository"
)

// ActorRepository implements repository.ActorRepository for SQLite
type ActorRepository struct {
	db *DB
}

// NewActorRepository creates a new ActorRepository
func NewActorRepository(db *DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// Create inserts a new actor
func (r *ActorRepository) Create(ctx context.Context, a *actor.Actor) error {
	query := `
		INSERT INTO actors (id, display_name, email, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, a.ID, a.DisplayName, a.Email, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to create actor: %w", err)
	}

	for _, role := range a.Roles {
		if err := r.GrantRole(ctx, a.ID, role); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves an actor by ID, roles included
func (r *ActorRepository) Get(ctx context.Context, id string) (*actor.Actor, error) {
	query := `
		SELECT id, display_name, email, created_at
		FROM actors
		WHERE id = ?
	`

	var a actor.Actor
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.DisplayName,
		&a.Email,
		&a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	roles, err := r.RolesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Roles = roles

	return &a, nil
}

// List returns all actors ordered by creation time
func (r *ActorRepository) List(ctx context.Context) ([]actor.Actor, error) {
	query := `
		SELECT id, display_name, email, created_at
		FROM actors
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	defer rows.Close()

	var actors []actor.Actor
	for rows.Next() {
		var a actor.Actor
		if err := rows.Scan(&a.ID, &a.DisplayName, &a.Email, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan actor: %w", err)
		}
		actors = append(actors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate actors: %w", err)
	}

	return actors, nil
}

// RolesOf returns the current role set for an actor
func (r *ActorRepository) RolesOf(ctx context.Context, actorID string) ([]actor.Role, error) {
	query := `
		SELECT role
		FROM actor_roles
		WHERE actor_id = ?
		ORDER BY role
	`

	rows, err := r.db.QueryContext(ctx, query, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	defer rows.Close()

	var roles []actor.Role
	for rows.Next() {
		var role actor.Role
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roles: %w", err)
	}

	return roles, nil
}

// GrantRole adds a role to an actor's role set; granting an already-held role
// is a no-op
func (r *ActorRepository) GrantRole(ctx context.Context, actorID string, role actor.Role) error {
	query := `
		INSERT OR IGNORE INTO actor_roles (actor_id, role)
		VALUES (?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, actorID, role)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}
