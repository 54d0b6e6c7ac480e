package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps encrypted credentials in a local SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	box *cipherBox
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the credential database at path. hexKey is
// the hex-encoded 32-byte encryption key.
func OpenSQLite(path, hexKey string) (*SQLiteStore, error) {
	box, err := newCipherBox(hexKey)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating credential dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening credential db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS credentials (
		token      TEXT PRIMARY KEY,
		api_key    BLOB NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating credentials table: %w", err)
	}

	return &SQLiteStore{db: db, box: box}, nil
}

func (s *SQLiteStore) Put(ctx context.Context, token, apiKey string) error {
	blob, err := s.box.seal(apiKey)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO credentials (token, api_key) VALUES (?, ?)`,
		token, blob,
	)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, token string) (string, bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT api_key FROM credentials WHERE token = ?`, token,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
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

func (s *SQLiteStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE token = ?`, token)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
