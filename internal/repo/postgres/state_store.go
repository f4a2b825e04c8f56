package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type StateStore struct {
	db DBTX
}

func NewStateStore(db DBTX) *StateStore {
	return &StateStore{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS visitor_state (
	visitor_id TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (visitor_id, key)
)`

func (s *StateStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure visitor_state schema: %w", err)
	}
	return nil
}

func (s *StateStore) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRow(ctx,
		`SELECT value FROM visitor_state WHERE visitor_id = $1 AND key = $2`,
		visitorID, key,
	).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *StateStore) Set(ctx context.Context, visitorID, key, value string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO visitor_state (visitor_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (visitor_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, visitorID, key, value)
	return err
}

func (s *StateStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
