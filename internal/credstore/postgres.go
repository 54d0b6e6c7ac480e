package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps encrypted credentials in a shared Postgres database,
// for deployments where more than one gateway instance serves the same users.
type PostgresStore struct {
	pool *pgxpool.Pool
	box  *cipherBox
}

var _ Store = (*PostgresStore)(nil)

// OpenPostgres connects to the credential database at dsn and ensures the
// credentials table exists. hexKey is the hex-encoded 32-byte encryption key.
func OpenPostgres(ctx context.Context, dsn, hexKey string) (*PostgresStore, error) {
	box, err := newCipherBox(hexKey)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS credentials (
		token      TEXT PRIMARY KEY,
		api_key    BYTEA NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating credentials table: %w", err)
	}

	return &PostgresStore{pool: pool, box: box}, nil
}

func (s *PostgresStore) Put(ctx context.Context, token, apiKey string) error {
	blob, err := s.box.seal(apiKey)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO credentials (token, api_key) VALUES ($1, $2)
		 ON CONFLICT (token) DO UPDATE SET api_key = EXCLUDED.api_key`,
		token, blob,
	)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, token string) (string, bool, error) {
	var blob []byte
	err := s.pool.QueryRow(ctx,
		`SELECT api_key FROM credentials WHERE token = $1`, token,
	).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	apiKey, err := s.box.open(blob)
	if err != nil {
		return "", false, err
	}
	return apiKey, true, nil
}

func (s *PostgresStore) Delete(ctx context.Context, token string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM credentials WHERE token = $1`, token)
	return err
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
