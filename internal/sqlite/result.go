package sqlite

import (
	"context"
	"fmt"

	"github.com/cogwell/cogniscreen/internal/domain/result"
	"github.com/cogwell/cogniscreen/internal/repository"
)

// ResultRepository implements repository.ResultRepository for SQLite. The
// table is append-only; no update or delete statement exists here.
type ResultRepository struct {
	db *DB
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Insert stores one assessment result. The single-statement insert is atomic:
// the row is either fully written or not written at all.
func (r *ResultRepository) Insert(ctx context.Context, res *result.Result) error {
	query := `
		INSERT INTO assessment_results (
			id, actor_id, voice_score, memory_score, survey_score, level, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.ActorID,
		res.VoiceScore,
		res.MemoryScore,
		res.SurveyScore,
		res.Level,
		res.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert result: %w", err)
	}

	return nil
}

// ListByActor returns one actor's results, newest first
func (r *ResultRepository) ListByActor(ctx context.Context, actorID string) ([]result.Result, error) {
	query := `
		SELECT id, actor_id, voice_score, memory_score, survey_score, level, created_at
		FROM assessment_results
		WHERE actor_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// ListAll returns every stored result, newest first
func (r *ResultRepository) ListAll(ctx context.Context) ([]result.Result, error) {
	query := `
		SELECT id, actor_id, voice_score, memory_score, survey_score, level, created_at
		FROM assessment_results
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanResults(rows rowScanner) ([]result.Result, error) {
	var results []result.Result
	for rows.Next() {
		var res result.Result
		if err := rows.Scan(
			&res.ID,
			&res.ActorID,
			&res.VoiceScore,
			&res.MemoryScore,
			&res.SurveyScore,
			&res.Level,
			&res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}
	return results, nil
}
