package historyrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naufalrizky/healthscan/internal/domain/history"
)

// PostgresRepository stores the snapshot as a single jsonb row so the
// save path stays atomic like the KV envelope.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Migrate creates the backing table.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS diagnosis_history (
			id smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			version integer NOT NULL,
			payload jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`)
	return err
}

// Load implements history.Repository.
func (r *PostgresRepository) Load(ctx context.Context) ([]history.Entry, error) {
	var (
		version int
		payload []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT version, payload
		FROM diagnosis_history
		WHERE id = 1
	`).Scan(&version, &payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if version != envelopeVersion {
		return nil, fmt.Errorf("unsupported history schema version %d", version)
	}
	var entries []history.Entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("decode history payload: %w", err)
	}
	return entries, nil
}

// Save implements history.Repository.
func (r *PostgresRepository) Save(ctx context.Context, entries []history.Entry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history payload: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO diagnosis_history (id, version, payload, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id)
		DO UPDATE SET version = EXCLUDED.version, payload = EXCLUDED.payload, updated_at = now()
	`, envelopeVersion, payload)
	return err
}

var _ history.Repository = (*PostgresRepository)(nil)
