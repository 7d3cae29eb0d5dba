package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeSquared-Agency/scribe/internal/record"
)

// Postgres is the durable sink: one row per entry, facets as JSONB so the
// reporting UI can query inside them.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (s *Postgres) Close() {
	s.pool.Close()
}

// EnsureSchema creates the audit_entries table if it does not exist.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS audit_entries (
			id          uuid PRIMARY KEY,
			agent_id    text NOT NULL,
			user_id     text NOT NULL,
			kind        text NOT NULL,
			created_at  timestamptz NOT NULL,
			summary     text NOT NULL,
			facets      jsonb NOT NULL,
			source_hash text NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure audit_entries schema: %w", err)
	}
	return nil
}

// Append inserts the entry. Failures surface as ErrUnavailable; no retry
// happens here.
func (s *Postgres) Append(ctx context.Context, e *record.Entry) (string, error) {
	facets, err := json.Marshal(e.Facets)
	if err != nil {
		return "", fmt.Errorf("marshal facets: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO audit_entries (id, agent_id, user_id, kind, created_at, summary, facets, source_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.AgentID, e.UserID, e.Kind, e.CreatedAt, e.Summary, facets, e.SourceHash,
	)
	if err != nil {
		return "", fmt.Errorf("%w: insert audit entry: %v", ErrUnavailable, err)
	}
	return e.ID, nil
}
