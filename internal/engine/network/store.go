package network

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

// SQLStore persists the record set in a local SQLite database.
// Save replaces the stored set wholesale; records are never upserted
// individually.
type SQLStore struct {
	db *sql.DB
}

// DefaultDataDir is where the database lives unless overridden.
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".go_network")
}

// OpenStore opens (or creates) the database under dir.
func OpenStore(dir string) (*SQLStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "network.db"))
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS connections (
		pos          INTEGER PRIMARY KEY,
		id           TEXT NOT NULL,
		first_name   TEXT NOT NULL,
		last_name    TEXT NOT NULL,
		email        TEXT NOT NULL DEFAULT '',
		company      TEXT NOT NULL DEFAULT '',
		position     TEXT NOT NULL DEFAULT '',
		url          TEXT NOT NULL DEFAULT '',
		connected_on TEXT NOT NULL DEFAULT '',
		category     TEXT NOT NULL,
		blurb        TEXT NOT NULL DEFAULT '',
		enriched_at  TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}

// Close closes the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Load reads the full record set. An empty database yields the default
// state: no records, empty credentials, revision zero.
func (s *SQLStore) Load(ctx context.Context) (*RecordSet, error) {
	set := &RecordSet{}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, company, position, url, connected_on, category, blurb, enriched_at
		FROM connections ORDER BY pos ASC`)
	if err != nil {
		return nil, fmt.Errorf("store: query connections: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r Record
		var category string
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Email, &r.Company,
			&r.Position, &r.URL, &r.ConnectedOn, &category, &r.Blurb, &r.EnrichedAt); err != nil {
			return nil, fmt.Errorf("store: scan connection: %w", err)
		}
		r.Category = Category(category)
		set.Records = append(set.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate connections: %w", err)
	}

	meta, err := s.loadMeta(ctx)
	if err != nil {
		return nil, err
	}
	set.Credentials.TavilyKey = meta["tavily_key"]
	set.Credentials.GeminiKey = meta["gemini_key"]
	set.Revision, _ = strconv.ParseInt(meta["revision"], 10, 64)
	return set, nil
}

func (s *SQLStore) loadMeta(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("store: query meta: %w", err)
	}
	defer rows.Close()
	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("store: scan meta: %w", err)
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

// Save writes the whole set back in one transaction and bumps its revision.
func (s *SQLStore) Save(ctx context.Context, set *RecordSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM connections`); err != nil {
		return fmt.Errorf("store: clear connections: %w", err)
	}
	for i := range set.Records {
		r := &set.Records[i]
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO connections (pos, id, first_name, last_name, email, company, position, url, connected_on, category, blurb, enriched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, r.ID, r.FirstName, r.LastName, r.Email, r.Company,
			r.Position, r.URL, r.ConnectedOn, string(r.Category), r.Blurb, r.EnrichedAt); err != nil {
			return fmt.Errorf("store: insert connection %s: %w", r.ID, err)
		}
	}

	set.Revision++
	for k, v := range map[string]string{
		"tavily_key": set.Credentials.TavilyKey,
		"gemini_key": set.Credentials.GeminiKey,
		"revision":   strconv.FormatInt(set.Revision, 10),
	} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v); err != nil {
			return fmt.Errorf("store: write meta %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit save: %w", err)
	}
	return nil
}

// Reset drops all records and credentials. The revision row survives and
// bumps, so cache keys minted before the reset never match data stored
// after it.
func (s *SQLStore) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin reset: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM connections`); err != nil {
		return fmt.Errorf("store: clear connections: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM meta WHERE key != 'revision'`); err != nil {
		return fmt.Errorf("store: clear meta: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES ('revision', '1')
		ON CONFLICT(key) DO UPDATE SET value = CAST(CAST(meta.value AS INTEGER) + 1 AS TEXT)`); err != nil {
		return fmt.Errorf("store: bump revision: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit reset: %w", err)
	}
	return nil
}
