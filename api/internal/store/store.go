package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"schedule-scanner/api/internal/schedule"
)

var ErrNoEmployeeName = errors.New("employee name is empty")

// Store keeps one JSON file per processed schedule under
// <Root>/<sanitized employee>/<sanitized employee>_schedule_<stamp>.json.
// Records are independent files; there is no cross-record index.
type Store struct {
	Root string
}

func New(root string) *Store { return &Store{Root: root} }

const stampLayout = "20060102_150405"

// Save writes the record for raw+analysis and returns the file path.
// Two saves within the same second for the same employee overwrite each
// other; timestamp granularity is the only collision handling.
func (s *Store) Save(raw schedule.Data, analysis schedule.Analysis, now time.Time) (string, error) {
	folder, err := s.employeeDir(raw.EmployeeName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}

	stamp := now.Format(stampLayout)
	rec := schedule.StoredRecord{
		RawSchedule: raw,
		Analysis:    analysis,
		ProcessedAt: stamp,
	}
	name := fmt.Sprintf("%s_schedule_%s.json", filepath.Base(folder), stamp)
	path := filepath.Join(folder, name)

	if err := writeJSONAtomic(path, rec); err != nil {
		return "", fmt.Errorf("save schedule: %w", err)
	}
	return path, nil
}

// HasWeek reports whether a stored record for the employee covers the
// same week identity. Files that cannot be read or decoded are skipped.
func (s *Store) HasWeek(employeeName string, week []string) (bool, error) {
	if len(week) == 0 {
		return false, nil
	}
	folder, err := s.employeeDir(employeeName)
	if err != nil {
		return false, err
	}

	recs, err := readDir(folder)
	if err != nil {
		return false, err
	}
	for _, rec := range recs {
		if schedule.SameWeek(schedule.WeekIdentity(rec.RawSchedule), week) {
			return true, nil
		}
	}
	return false, nil
}

// List returns the employee's stored records, oldest first.
func (s *Store) List(employeeName string) ([]schedule.StoredRecord, error) {
	folder, err := s.employeeDir(employeeName)
	if err != nil {
		return nil, err
	}
	return readDir(folder)
}

func (s *Store) employeeDir(employeeName string) (string, error) {
	safe := schedule.SafeFolderName(strings.TrimSpace(employeeName))
	if safe == "" {
		return "", ErrNoEmployeeName
	}
	return filepath.Join(s.Root, safe), nil
}

func readDir(folder string) ([]schedule.StoredRecord, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		// dot-prefixed files are unrenamed temp leftovers, not records
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]schedule.StoredRecord, 0, len(names))
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(folder, name))
		if err != nil {
			continue
		}
		var rec schedule.StoredRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// writeJSONAtomic marshals v with indent 4 and renames a temp file from
// the same directory over the target path.
func writeJSONAtomic(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp_schedule_*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write([]byte("\n")); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
