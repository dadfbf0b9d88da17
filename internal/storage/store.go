// Package storage persists computed results so they can be listed, shown,
// plotted and exported later. Two backends share the Store interface: a
// directory tree of JSON and CSV files, and a SQLite database.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/metrics"
	"github.com/EEseka/physiquest/internal/quantity"
)

var (
	ErrNotFound    = errors.New("storage: record not found")
	ErrAmbiguousID = errors.New("storage: id prefix matches several records")
	ErrUnknownKind = errors.New("storage: unknown backend")
)

// Meta describes a saved record without its curves.
type Meta struct {
	ID        string             `json:"id"`
	Domain    engine.Domain      `json:"domain"`
	Label     string             `json:"label"`
	CreatedAt time.Time          `json:"created_at"`
	Inputs    map[string]float64 `json:"inputs"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Record is one saved calculation.
type Record struct {
	Meta
	Summary engine.Summary `json:"summary"`
}

type Store interface {
	Save(rec Record) (Meta, error)
	Load(id string) (Record, error)
	// List returns every record's metadata, newest first.
	List() ([]Meta, error)
	Delete(id string) error
	Close() error
}

// NewRecord stamps a fresh id and creation time on a computed summary.
func NewRecord(label string, in quantity.Set, sum engine.Summary) Record {
	return Record{
		Meta: Meta{
			ID:        uuid.NewString(),
			Domain:    sum.Domain,
			Label:     label,
			CreatedAt: time.Now().UTC(),
			Inputs:    in.Map(),
			Metrics:   metrics.Summary(sum),
		},
		Summary: sum,
	}
}

// Open opens the backend named kind ("file" or "sqlite") rooted at dir.
func Open(kind, dir string, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	switch kind {
	case "file":
		return NewFileStore(dir, log), nil
	case "sqlite":
		return OpenSQLite(filepath.Join(dir, "physiquest.db"), log)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Find loads the record whose id is ref or starts with ref.
func Find(s Store, ref string) (Record, error) {
	if ref == "" {
		return Record{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	rec, err := s.Load(ref)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return rec, err
	}

	metas, err := s.List()
	if err != nil {
		return Record{}, err
	}
	var match string
	for _, m := range metas {
		if !strings.HasPrefix(m.ID, ref) {
			continue
		}
		if match != "" {
			return Record{}, fmt.Errorf("%w: %q", ErrAmbiguousID, ref)
		}
		match = m.ID
	}
	if match == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return s.Load(match)
}
