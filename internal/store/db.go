// Package store exports rendered paradigms to SQLite.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS export_runs (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	entries    INTEGER NOT NULL DEFAULT 0,
	forms      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS lemmas (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	ident         TEXT NOT NULL UNIQUE,
	origin        TEXT NOT NULL,
	category      TEXT NOT NULL,
	mstype        TEXT NOT NULL,
	pk_definition TEXT NOT NULL DEFAULT '',
	lv_definition TEXT NOT NULL DEFAULT '',
	run_id        TEXT REFERENCES export_runs(id)
);

CREATE TABLE IF NOT EXISTS forms (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	lemma_id     INTEGER NOT NULL REFERENCES lemmas(id) ON DELETE CASCADE,
	language     TEXT NOT NULL,
	ta           TEXT NOT NULL,
	context      TEXT NOT NULL DEFAULT '',
	historical   TEXT NOT NULL DEFAULT '',
	broad        TEXT NOT NULL DEFAULT '',
	narrow       TEXT NOT NULL DEFAULT '',
	romanization TEXT NOT NULL DEFAULT '',
	falavay      TEXT NOT NULL DEFAULT '',
	overridden   INTEGER NOT NULL DEFAULT 0,
	UNIQUE(lemma_id, language, ta, context)
);

CREATE INDEX IF NOT EXISTS idx_forms_lemma ON forms(lemma_id);
CREATE INDEX IF NOT EXISTS idx_forms_romanization ON forms(romanization);
`

// Open opens the database at path and runs the migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if path == ":memory:" {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitDB runs the migrations on db.
func InitDB(db *sql.DB) error {
	for _, s := range strings.Split(migrationsSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
