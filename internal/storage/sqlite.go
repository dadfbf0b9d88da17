package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/EEseka/physiquest/internal/engine"
)

// SQLiteStore keeps records in one table; inputs, metrics and the summary
// are JSON columns.
type SQLiteStore struct {
	conn *sqlx.DB
	log  *zap.Logger
}

type recordRow struct {
	ID          string `db:"id"`
	Domain      string `db:"domain"`
	Label       string `db:"label"`
	CreatedAt   int64  `db:"created_at"`
	InputsJSON  string `db:"inputs_json"`
	MetricsJSON string `db:"metrics_json"`
	SummaryJSON string `db:"summary_json"`
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string, log *zap.Logger) (*SQLiteStore, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{conn: conn, log: log}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		domain TEXT NOT NULL,
		label TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		inputs_json TEXT NOT NULL,
		metrics_json TEXT NOT NULL,
		summary_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_created ON records(created_at);
	CREATE INDEX IF NOT EXISTS idx_records_domain ON records(domain);
	`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *SQLiteStore) Save(rec Record) (Meta, error) {
	inputsJSON, err := json.Marshal(rec.Inputs)
	if err != nil {
		return Meta{}, err
	}
	metricsJSON, err := json.Marshal(rec.Metrics)
	if err != nil {
		return Meta{}, err
	}
	summaryJSON, err := json.Marshal(rec.Summary)
	if err != nil {
		return Meta{}, err
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return Meta{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT OR REPLACE INTO records
		(id, domain, label, created_at, inputs_json, metrics_json, summary_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Domain), rec.Label, rec.CreatedAt.UnixNano(),
		string(inputsJSON), string(metricsJSON), string(summaryJSON),
	)
	if err != nil {
		return Meta{}, fmt.Errorf("insert record %s: %w", rec.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return Meta{}, err
	}

	s.log.Debug("saved record", zap.String("id", rec.ID), zap.Int("summary_bytes", len(summaryJSON)))
	return rec.Meta, nil
}

func (s *SQLiteStore) Load(id string) (Record, error) {
	var row recordRow
	err := s.conn.Get(&row, `SELECT * FROM records WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, err
	}

	meta, err := row.meta()
	if err != nil {
		return Record{}, err
	}
	rec := Record{Meta: meta}
	if err := json.Unmarshal([]byte(row.SummaryJSON), &rec.Summary); err != nil {
		return Record{}, fmt.Errorf("decode summary %s: %w", id, err)
	}
	return rec, nil
}

func (s *SQLiteStore) List() ([]Meta, error) {
	var rows []recordRow
	err := s.conn.Select(&rows, `SELECT id, domain, label, created_at, inputs_json, metrics_json
		FROM records ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	metas := make([]Meta, 0, len(rows))
	for _, row := range rows {
		meta, err := row.meta()
		if err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

func (s *SQLiteStore) Delete(id string) error {
	res, err := s.conn.Exec(`DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}

func (r recordRow) meta() (Meta, error) {
	meta := Meta{
		ID:        r.ID,
		Domain:    engine.Domain(r.Domain),
		Label:     r.Label,
		CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
	}
	if err := json.Unmarshal([]byte(r.InputsJSON), &meta.Inputs); err != nil {
		return Meta{}, fmt.Errorf("decode inputs %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.MetricsJSON), &meta.Metrics); err != nil {
		return Meta{}, fmt.Errorf("decode metrics %s: %w", r.ID, err)
	}
	return meta, nil
}
