package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cogwell/cogniscreen/internal/repository"
)

// TokenRepository implements repository.TokenRepository for SQLite
type TokenRepository struct {
	db *DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Save stores a hashed bearer token for an actor
func (r *TokenRepository) Save(ctx context.Context, tokenHash, actorID, description string) error {
	query := `
		INSERT INTO api_tokens (token_hash, actor_id, description)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, tokenHash, actorID, description)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Resolve maps a hashed bearer token to the owning actor ID
func (r *TokenRepository) Resolve(ctx context.Context, tokenHash string) (string, error) {
	query := `
		SELECT actor_id
		FROM api_tokens
		WHERE token_hash = ?
	`

	var actorID string
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(&actorID)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve token: %w", err)
	}
	return actorID, nil
}
