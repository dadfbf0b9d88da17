package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/EEseka/physiquest/internal/engine"
)

const (
	metadataFile = "metadata.json"
	summaryFile  = "summary.json"
	curvesDir    = "curves"
)

// FileStore keeps one directory per record: metadata.json, summary.json
// holding scalars and paths, and one CSV per curve under curves/.
type FileStore struct {
	baseDir string
	log     *zap.Logger
}

func NewFileStore(baseDir string, log *zap.Logger) *FileStore {
	return &FileStore{baseDir: baseDir, log: log}
}

func (s *FileStore) dir(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return filepath.Join(s.baseDir, id), nil
}

func (s *FileStore) Save(rec Record) (Meta, error) {
	runDir, err := s.dir(rec.ID)
	if err != nil {
		return Meta{}, err
	}
	if err := os.MkdirAll(filepath.Join(runDir, curvesDir), 0755); err != nil {
		return Meta{}, err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), rec.Meta); err != nil {
		return Meta{}, err
	}

	// curve points live in the CSVs; the summary keeps only their labels
	sum := rec.Summary
	sum.Curves = make([]engine.Series, len(rec.Summary.Curves))
	for i, c := range rec.Summary.Curves {
		if err := writeCurve(filepath.Join(runDir, curvesDir, c.Name+".csv"), c); err != nil {
			return Meta{}, err
		}
		c.Points = nil
		sum.Curves[i] = c
	}
	if err := writeJSON(filepath.Join(runDir, summaryFile), sum); err != nil {
		return Meta{}, err
	}

	s.log.Debug("saved record", zap.String("id", rec.ID), zap.String("dir", runDir))
	return rec.Meta, nil
}

func (s *FileStore) Load(id string) (Record, error) {
	runDir, err := s.dir(id)
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := readJSON(filepath.Join(runDir, metadataFile), &rec.Meta); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return Record{}, err
	}
	if err := readJSON(filepath.Join(runDir, summaryFile), &rec.Summary); err != nil {
		return Record{}, err
	}
	for i, c := range rec.Summary.Curves {
		pts, err := readCurve(filepath.Join(runDir, curvesDir, c.Name+".csv"))
		if err != nil {
			return Record{}, fmt.Errorf("storage: curve %s: %w", c.Name, err)
		}
		rec.Summary.Curves[i].Points = pts
	}
	return rec, nil
}

func (s *FileStore) List() ([]Meta, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Meta{}, nil
		}
		return nil, err
	}

	metas := make([]Meta, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		var meta Meta
		if err := readJSON(filepath.Join(s.baseDir, entry.Name(), metadataFile), &meta); err != nil {
			continue
		}
		metas = append(metas, meta)
	}

	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

func (s *FileStore) Delete(id string) error {
	runDir, err := s.dir(id)
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(runDir, metadataFile)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return err
	}
	return os.RemoveAll(runDir)
}

func (s *FileStore) Close() error { return nil }

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeCurve(path string, c engine.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range c.Points {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func readCurve(path string) ([]engine.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []engine.Point{}, nil
	}

	pts := make([]engine.Point, 0, len(records)-1)
	for _, record := range records[1:] {
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, err
		}
		pts = append(pts, engine.Point{X: x, Y: y})
	}
	return pts, nil
}
