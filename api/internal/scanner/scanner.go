package scanner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"schedule-scanner/api/internal/llm"
	"schedule-scanner/api/internal/schedule"
	"schedule-scanner/api/internal/store"
	"schedule-scanner/api/internal/util"
)

var (
	ErrDuplicateWeek  = errors.New("a schedule for this week has already been processed")
	ErrNoEmployeeName = store.ErrNoEmployeeName
	ErrBadImage       = errors.New("unsupported image format (want png or jpeg)")
)

// Result is everything one processed schedule produces.
type Result struct {
	Schedule  schedule.Data
	Analysis  schedule.Analysis
	Week      []string
	SavedPath string
	Engine    string
}

// Scanner runs the extract -> dedup -> summarize -> save pipeline.
type Scanner struct {
	Engines *llm.Engines
	Store   *store.Store

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func New(engines *llm.Engines, st *store.Store) *Scanner {
	return &Scanner{Engines: engines, Store: st, Now: time.Now}
}

// Process handles one uploaded schedule image end to end. A duplicate
// week stops the pipeline before the summarize call and surfaces as
// ErrDuplicateWeek; the caller treats it as a business rejection, not a
// server failure.
func (s *Scanner) Process(ctx context.Context, image []byte, engineName string) (Result, error) {
	if !util.IsSupportedImage(image) {
		return Result{}, ErrBadImage
	}

	eng, err := s.Engines.Get(engineName)
	if err != nil {
		return Result{}, err
	}

	data, err := eng.Extract(ctx, image)
	if err != nil {
		return Result{}, fmt.Errorf("extract: %w", err)
	}
	data.EmployeeName = strings.TrimSpace(data.EmployeeName)
	if data.EmployeeName == "" {
		return Result{}, ErrNoEmployeeName
	}

	week := schedule.WeekIdentity(data)
	if len(week) > 0 {
		dup, err := s.Store.HasWeek(data.EmployeeName, week)
		if err != nil {
			return Result{}, fmt.Errorf("duplicate check: %w", err)
		}
		if dup {
			return Result{Schedule: data, Week: week, Engine: eng.Name()}, ErrDuplicateWeek
		}
	}

	analysis, err := eng.Summarize(ctx, data)
	if err != nil {
		return Result{}, fmt.Errorf("summarize: %w", err)
	}

	path, err := s.Store.Save(data, analysis, s.Now())
	if err != nil {
		return Result{}, err
	}

	return Result{
		Schedule:  data,
		Analysis:  analysis,
		Week:      week,
		SavedPath: path,
		Engine:    eng.Name(),
	}, nil
}
