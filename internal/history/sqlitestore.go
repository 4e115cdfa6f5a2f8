package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/appicon/internal/generator"
	"github.com/Mavwarf/appicon/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// the tables if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// PRAGMAs are per connection.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    root        TEXT    NOT NULL DEFAULT '',
    base_path   TEXT    NOT NULL DEFAULT '',
    base_sha256 TEXT    NOT NULL DEFAULT '',
    font_source TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS artifacts (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    seq     INTEGER NOT NULL,
    label   TEXT    NOT NULL,
    kind    TEXT    NOT NULL,
    size    INTEGER NOT NULL,
    path    TEXT    NOT NULL,
    sha256  TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_artifacts_run  ON artifacts(run_id, seq);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Path() string { return s.path }

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Log(r Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, root, base_path, base_sha256, font_source) VALUES (?, ?, ?, ?, ?)`,
		r.Time.UTC().Format(time.RFC3339), r.Root, r.BasePath, r.BaseSHA256, r.FontSource)
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO artifacts (run_id, seq, label, kind, size, path, sha256) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, a := range r.Artifacts {
		if _, err := stmt.Exec(runID, i, a.Label, string(a.Kind), a.Size, a.Path, a.SHA256); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Runs(limit int) ([]Run, error) {
	q := `SELECT id, timestamp, root, base_path, base_sha256, font_source FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}

	var ids []int64
	var runs []Run
	for rows.Next() {
		var (
			id int64
			ts string
			r  Run
		)
		if err := rows.Scan(&id, &ts, &r.Root, &r.BasePath, &r.BaseSHA256, &r.FontSource); err != nil {
			rows.Close()
			return nil, err
		}
		if r.Time, err = time.Parse(time.RFC3339, ts); err != nil {
			rows.Close()
			return nil, fmt.Errorf("run %d: %w", id, err)
		}
		ids = append(ids, id)
		runs = append(runs, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Oldest first, matching FileStore.
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
		ids[i], ids[j] = ids[j], ids[i]
	}
	for i, id := range ids {
		arts, err := s.artifacts(id)
		if err != nil {
			return nil, err
		}
		runs[i].Artifacts = arts
	}
	return runs, nil
}

func (s *SQLiteStore) artifacts(runID int64) ([]generator.Artifact, error) {
	rows, err := s.db.Query(
		`SELECT label, kind, size, path, sha256 FROM artifacts WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arts []generator.Artifact
	for rows.Next() {
		var (
			a    generator.Artifact
			kind string
		)
		if err := rows.Scan(&a.Label, &kind, &a.Size, &a.Path, &a.SHA256); err != nil {
			return nil, err
		}
		a.Kind = generator.Kind(kind)
		arts = append(arts, a)
	}
	return arts, rows.Err()
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM artifacts; DELETE FROM runs;`)
	return err
}
