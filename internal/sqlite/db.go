package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Results are append-only: no UPDATE or
// DELETE path exists for assessment_results.
func (db *DB) RunMigrations() error {
	migration := `
-- Actors, written by the identity collaborator on first sign-in
CREATE TABLE actors (
    id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    email TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Role assignments, external mutable state
CREATE TABLE actor_roles (
    actor_id TEXT NOT NULL,
    role TEXT NOT NULL,
    granted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (actor_id, role),
    FOREIGN KEY (actor_id) REFERENCES actors(id)
);
CREATE INDEX idx_actor_roles ON actor_roles(actor_id);

-- Assessment results, append-only log
CREATE TABLE assessment_results (
    id TEXT PRIMARY KEY,
    actor_id TEXT NOT NULL,
    voice_score REAL NOT NULL,
    memory_score REAL NOT NULL,
    survey_score REAL NOT NULL,
    level TEXT NOT NULL CHECK(level IN ('low', 'moderate', 'high')),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (actor_id) REFERENCES actors(id)
);
CREATE INDEX idx_result_actor ON assessment_results(actor_id);
CREATE INDEX idx_result_created ON assessment_results(created_at);

-- API bearer tokens for authentication
CREATE TABLE api_tokens (
    token_hash TEXT PRIMARY KEY,
    actor_id TEXT NOT NULL,
    description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (actor_id) REFERENCES actors(id)
);
CREATE INDEX idx_token_actor ON api_tokens(actor_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
