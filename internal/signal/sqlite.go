package signal

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// MemoryDSN opens a private in-process SQLite database.
const MemoryDSN = ":memory:"

const signalsSchema = `
CREATE TABLE IF NOT EXISTS signals (
    name TEXT PRIMARY KEY,
    value INTEGER NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLiteStore implements Store on top of a SQLite table. Pointing it at a
// file leaves the final signal values on disk for inspection after a run;
// the default MemoryDSN keeps everything in process.
//
// Store has no error returns, so database failures are logged, reads that
// fail report the signal as absent, and the first failure is kept for Err.
type SQLiteStore struct {
	mu   sync.Mutex
	db   *sql.DB
	opts options
	err  error
}

// NewSQLiteStore opens the database at path, creates the schema and
// replaces any existing rows with seed.
func NewSQLiteStore(path string, seed map[string]int, opts ...Option) (*SQLiteStore, error) {
	if path == "" {
		path = MemoryDSN
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A :memory: database lives and dies with its connection, so pin one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(signalsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	s := &SQLiteStore{
		db:   db,
		opts: buildOptions(opts),
	}

	if err := s.reseed(seed); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed signals: %w", err)
	}

	return s, nil
}

// reseed clears the table and inserts seed in one transaction.
func (s *SQLiteStore) reseed(seed map[string]int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM signals`); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for name, value := range seed {
		if _, err := tx.Exec(`INSERT INTO signals (name, value, updated_at) VALUES (?, ?, ?)`, name, value, now); err != nil {
			return fmt.Errorf("insert %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// Write upserts name with value.
func (s *SQLiteStore) Write(name string, value int) {
	s.mu.Lock()
	_, err := s.db.Exec(`
		INSERT INTO signals (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, value, time.Now().UTC().Format(time.RFC3339Nano))
	s.mu.Unlock()

	if err != nil {
		s.fail("signal write failed", name, err)
		return
	}
	s.opts.wrote(name, value)
}

// Read returns the stored value of name. Missing rows and query failures
// both report ok=false.
func (s *SQLiteStore) Read(name string) (int, bool) {
	var value int

	s.mu.Lock()
	err := s.db.QueryRow(`SELECT value FROM signals WHERE name = ?`, name).Scan(&value)
	s.mu.Unlock()

	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.opts.read(name, 0, false)
		return 0, false
	case err != nil:
		s.fail("signal read failed", name, err)
		s.opts.read(name, 0, false)
		return 0, false
	}

	s.opts.read(name, value, true)
	return value, true
}

// Err returns the first database error seen by Write or Read, if any.
func (s *SQLiteStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) fail(msg, name string, err error) {
	s.opts.logger.Error(msg, "signal", name, "error", err)

	s.mu.Lock()
	if s.err == nil {
		s.err = fmt.Errorf("signal %s: %w", name, err)
	}
	s.mu.Unlock()
}
