package anthropic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"schedule-scanner/api/internal/prompt"
	"schedule-scanner/api/internal/schedule"
	"schedule-scanner/api/internal/util"
)

const defaultAPIURL = "https://api.anthropic.com/v1/messages"

type Engine struct {
	APIKey string
	Model  string
	APIURL string
	httpc  *http.Client
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey: key,
		Model:  model,
		APIURL: defaultAPIURL,
		httpc:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *Engine) Name() string { return "anthropic" }

func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Extract(ctx context.Context, image []byte) (schedule.Data, error) {
	b64 := base64.StdEncoding.EncodeToString(image)
	mime := util.SniffMimeHTTP(image)

	body := map[string]any{
		"model":      e.Model,
		"max_tokens": 1024,
		"messages": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "text", "text": prompt.ExtractSchedule},
					map[string]any{"type": "image", "source": map[string]any{
						"type":       "base64",
						"media_type": mime,
						"data":       b64,
					}},
				},
			},
		},
	}

	out, err := e.complete(ctx, "extract", body)
	if err != nil {
		return schedule.Data{}, err
	}

	var d schedule.Data
	if err := util.DecodeModelJSON(out, &d); err != nil {
		return schedule.Data{}, fmt.Errorf("anthropic extract: %w", err)
	}
	return d, nil
}

func (e *Engine) Summarize(ctx context.Context, data schedule.Data) (schedule.Analysis, error) {
	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return schedule.Analysis{}, err
	}

	body := map[string]any{
		"model":      e.Model,
		"max_tokens": 1024,
		"messages": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "text", "text": fmt.Sprintf(prompt.AnalyzeSchedule, js)},
				},
			},
		},
	}

	out, err := e.complete(ctx, "summarize", body)
	if err != nil {
		return schedule.Analysis{}, err
	}

	var a schedule.Analysis
	if err := util.DecodeModelJSON(out, &a); err != nil {
		return schedule.Analysis{}, fmt.Errorf("anthropic summarize: %w", err)
	}
	return a, nil
}

// complete posts one messages request and returns content[0].text.
func (e *Engine) complete(ctx context.Context, op string, body map[string]any) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("ANTHROPIC_API_KEY is empty")
	}
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", e.APIURL, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("x-api-key", e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic %s: %w", op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("anthropic %s %d: %s", op, resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("anthropic %s: %w", op, err)
	}
	if len(raw.Content) == 0 {
		return "", fmt.Errorf("anthropic %s: empty response", op)
	}
	return strings.TrimSpace(raw.Content[0].Text), nil
}
