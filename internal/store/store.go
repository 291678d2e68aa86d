package store

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lauvinko/lauvinko"
	"github.com/lauvinko/lauvinko/semantics"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// UpsertLemma inserts or refreshes the row for e and returns its id.
func UpsertLemma(db DBExecutor, runID string, e *lauvinko.Entry) (int64, error) {
	var id int64
	err := db.QueryRow(`INSERT INTO lemmas (ident, origin, category, mstype, pk_definition, lv_definition, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ident)
		DO UPDATE SET
			origin = excluded.origin,
			category = excluded.category,
			mstype = excluded.mstype,
			pk_definition = excluded.pk_definition,
			lv_definition = excluded.lv_definition,
			run_id = excluded.run_id
		RETURNING id`,
		e.Ident, string(e.Origin), e.Category.String(), e.Type.String(),
		e.Definition(semantics.ProtoKasanic), e.Definition(semantics.Lauvinko), runID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert lemma %s: %w", e.Ident, err)
	}
	return id, nil
}

// UpsertForm inserts or refreshes one paradigm cell.
func UpsertForm(db DBExecutor, lemmaID int64, f lauvinko.Form) error {
	ctx := ""
	if f.Language == semantics.Lauvinko {
		ctx = f.Context.Abbreviation()
	}
	_, err := db.Exec(`INSERT INTO forms (lemma_id, language, ta, context, historical, broad, narrow, romanization, falavay, overridden)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(lemma_id, language, ta, context)
		DO UPDATE SET
			historical = excluded.historical,
			broad = excluded.broad,
			narrow = excluded.narrow,
			romanization = excluded.romanization,
			falavay = excluded.falavay,
			overridden = excluded.overridden`,
		lemmaID, string(f.Language), f.TenseAspect.Abbreviation(), ctx,
		f.Historical, f.Broad, f.Narrow, f.Romanization, f.Falavay, f.Overridden,
	)
	if err != nil {
		return fmt.Errorf("upsert form %s: %w", f.Key(), err)
	}
	return nil
}

// ExportResult summarizes an export.
type ExportResult struct {
	RunID   string
	Entries int
	Forms   int
}

// Export renders every entry of d and writes it in one transaction.
// Paradigms are rendered concurrently; the writes are sequential.
func Export(ctx context.Context, db *sql.DB, d *lauvinko.Dictionary, logger *zap.Logger) (ExportResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries := d.Entries()
	paradigms := make([][]lauvinko.Form, len(entries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			forms, err := e.Paradigm()
			if err != nil {
				return err
			}
			paradigms[i] = forms
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return ExportResult{}, fmt.Errorf("render paradigms: %w", err)
	}

	res := ExportResult{RunID: uuid.NewString(), Entries: len(entries)}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ExportResult{}, fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO export_runs (id, created_at) VALUES (?, ?)`,
		res.RunID, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return ExportResult{}, fmt.Errorf("record run: %w", err)
	}
	for i, e := range entries {
		id, err := UpsertLemma(tx, res.RunID, e)
		if err != nil {
			return ExportResult{}, err
		}
		for _, f := range paradigms[i] {
			if err := UpsertForm(tx, id, f); err != nil {
				return ExportResult{}, fmt.Errorf("entry %s: %w", e.Ident, err)
			}
			res.Forms++
		}
		logger.Debug("exported entry", zap.String("ident", e.Ident), zap.Int("forms", len(paradigms[i])))
	}
	if _, err := tx.Exec(`UPDATE export_runs SET entries = ?, forms = ? WHERE id = ?`,
		res.Entries, res.Forms, res.RunID); err != nil {
		return ExportResult{}, fmt.Errorf("record run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return ExportResult{}, fmt.Errorf("commit export: %w", err)
	}
	logger.Info("export finished", zap.String("run_id", res.RunID),
		zap.Int("entries", res.Entries), zap.Int("forms", res.Forms))
	return res, nil
}

// StoredForm is a row of the forms table.
type StoredForm struct {
	Language     string
	TenseAspect  string
	Context      string
	Historical   string
	Romanization string
	Falavay      string
	Overridden   bool
}

// Forms reads back the stored paradigm of ident in insertion order.
func Forms(db DBExecutor, ident string) ([]StoredForm, error) {
	rows, err := db.Query(`SELECT f.language, f.ta, f.context, f.historical, f.romanization, f.falavay, f.overridden
		FROM forms f JOIN lemmas l ON l.id = f.lemma_id
		WHERE l.ident = ?
		ORDER BY f.id`, ident)
	if err != nil {
		return nil, fmt.Errorf("query forms: %w", err)
	}
	defer rows.Close()
	var out []StoredForm
	for rows.Next() {
		var f StoredForm
		if err := rows.Scan(&f.Language, &f.TenseAspect, &f.Context, &f.Historical, &f.Romanization, &f.Falavay, &f.Overridden); err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// FindByRomanization returns the identifiers whose forms are spelled s.
func FindByRomanization(db DBExecutor, s string) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT l.ident FROM forms f JOIN lemmas l ON l.id = f.lemma_id
		WHERE f.romanization = ? ORDER BY l.ident`, s)
	if err != nil {
		return nil, fmt.Errorf("query romanization: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var ident string
		if err := rows.Scan(&ident); err != nil {
			return nil, err
		}
		out = append(out, ident)
	}
	return out, rows.Err()
}
