package manifest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/favicons/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// tables and indexes.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

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
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    started    TEXT    NOT NULL,
    command    TEXT    NOT NULL DEFAULT '',
    asset_dir  TEXT    NOT NULL DEFAULT '',
    failed     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS assets (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    file    TEXT    NOT NULL,
    width   INTEGER NOT NULL,
    height  INTEGER NOT NULL,
    source  TEXT    NOT NULL,
    tool    TEXT    NOT NULL DEFAULT '',
    bytes   INTEGER NOT NULL DEFAULT 0,
    sha256  TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started DESC);
CREATE INDEX IF NOT EXISTS idx_assets_run   ON assets(run_id);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// Record inserts the run and its assets in one transaction and returns
// the new run ID. A zero Started time is replaced with now.
func (s *SQLiteStore) Record(run Run) (int64, error) {
	if run.Started.IsZero() {
		run.Started = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (started, command, asset_dir, failed) VALUES (?, ?, ?, ?)`,
		run.Started.Format(time.RFC3339Nano), run.Command, run.AssetDir, run.Failed,
	)
	if err != nil {
		return 0, fmt.Errorf("manifest: insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`INSERT INTO assets (run_id, file, width, height, source, tool, bytes, sha256)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	for _, a := range run.Assets {
		if _, err := stmt.Exec(id, a.File, a.Width, a.Height, a.Source, a.Tool, a.Bytes, a.SHA256); err != nil {
			return 0, fmt.Errorf("manifest: insert asset %s: %w", a.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Runs returns recorded runs, newest first, each with its assets in
// insertion order.
func (s *SQLiteStore) Runs(limit int) ([]Run, error) {
	q := `SELECT id, started, command, asset_dir, failed FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Command, &r.AssetDir, &r.Failed); err != nil {
			rows.Close()
			return nil, err
		}
		r.Started, _ = time.Parse(time.RFC3339Nano, started)
		runs = append(runs, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		assets, err := s.assets(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Assets = assets
	}
	return runs, nil
}

func (s *SQLiteStore) assets(runID int64) ([]Asset, error) {
	rows, err := s.db.Query(
		`SELECT file, width, height, source, tool, bytes, sha256 FROM assets WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Asset
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.File, &a.Width, &a.Height, &a.Source, &a.Tool, &a.Bytes, &a.SHA256); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
