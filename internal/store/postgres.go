package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id          UUID PRIMARY KEY,
	fingerprint TEXT NOT NULL UNIQUE,
	latitude    DOUBLE PRECISION NOT NULL,
	longitude   DOUBLE PRECISION NOT NULL,
	annual_kwh  DOUBLE PRECISION NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	payload     JSONB NOT NULL
)`

type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects with a lib/pq DSN or URL.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func NewPostgresStoreFromDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate analyses: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

type analysisRow struct {
	ID          string    `db:"id"`
	Fingerprint string    `db:"fingerprint"`
	CreatedAt   time.Time `db:"created_at"`
	Payload     []byte    `db:"payload"`
}

func encodeRow(a *Analysis) (analysisRow, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return analysisRow{}, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return analysisRow{ID: a.ID, Fingerprint: a.Fingerprint, CreatedAt: a.CreatedAt, Payload: payload}, nil
}

func decodeRow(row analysisRow) (*Analysis, error) {
	var a Analysis
	if err := json.Unmarshal(row.Payload, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", row.ID, err)
	}
	a.ID = row.ID
	a.Fingerprint = row.Fingerprint
	a.CreatedAt = row.CreatedAt
	return &a, nil
}

func (s *PostgresStore) Save(ctx context.Context, a *Analysis) error {
	row, err := encodeRow(a)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO analyses (id, fingerprint, latitude, longitude, annual_kwh, created_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (fingerprint) DO NOTHING`

	res, err := s.db.ExecContext(ctx, query,
		row.ID, row.Fingerprint,
		a.Inputs.Location.Latitude, a.Inputs.Location.Longitude,
		a.Report.AnnualEnergyKWh, row.CreatedAt, row.Payload,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		existing, err := s.FindByFingerprint(ctx, a.Fingerprint)
		if err != nil {
			return err
		}
		*a = *existing
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*Analysis, error) {
	return s.getOne(ctx, `SELECT id, fingerprint, created_at, payload FROM analyses WHERE id = $1`, id)
}

func (s *PostgresStore) FindByFingerprint(ctx context.Context, fingerprint string) (*Analysis, error) {
	return s.getOne(ctx, `SELECT id, fingerprint, created_at, payload FROM analyses WHERE fingerprint = $1`, fingerprint)
}

func (s *PostgresStore) getOne(ctx context.Context, query string, arg any) (*Analysis, error) {
	var row analysisRow
	if err := s.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}
	return decodeRow(row)
}
