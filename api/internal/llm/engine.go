package llm

import (
	"context"
	"fmt"
	"strings"

	"schedule-scanner/api/internal/schedule"
)

type Engine interface {
	Name() string
	GetModel() string
	Extract(ctx context.Context, image []byte) (schedule.Data, error)
	Summarize(ctx context.Context, data schedule.Data) (schedule.Analysis, error)
}

// Engines holds the configured providers. Anthropic is always present;
// Gemini only when its key is set.
type Engines struct {
	Anthropic Engine
	Gemini    Engine
}

func (e *Engines) Get(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "anthropic", "claude":
		return e.Anthropic, nil
	case "gemini":
		if e.Gemini == nil {
			return nil, fmt.Errorf("engine gemini is not configured (GEMINI_API_KEY empty)")
		}
		return e.Gemini, nil
	}
	return nil, fmt.Errorf("unknown engine %q (available: anthropic | gemini)", name)
}
