package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"schedule-scanner/api/internal/prompt"
	"schedule-scanner/api/internal/schedule"
	"schedule-scanner/api/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Extract(ctx context.Context, image []byte) (schedule.Data, error) {
	mime := util.SniffMimeHTTP(image)
	parts := []genai.Part{
		genai.Text(prompt.ExtractSchedule),
		&genai.Blob{MIMEType: mime, Data: image},
	}

	out, err := e.generate(ctx, parts)
	if err != nil {
		return schedule.Data{}, fmt.Errorf("gemini extract: %w", err)
	}

	var d schedule.Data
	if err := util.DecodeModelJSON(out, &d); err != nil {
		return schedule.Data{}, fmt.Errorf("gemini extract: %w", err)
	}
	return d, nil
}

func (e *Engine) Summarize(ctx context.Context, data schedule.Data) (schedule.Analysis, error) {
	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return schedule.Analysis{}, err
	}
	parts := []genai.Part{
		genai.Text(fmt.Sprintf(prompt.AnalyzeSchedule, js)),
	}

	out, err := e.generate(ctx, parts)
	if err != nil {
		return schedule.Analysis{}, fmt.Errorf("gemini summarize: %w", err)
	}

	var a schedule.Analysis
	if err := util.DecodeModelJSON(out, &a); err != nil {
		return schedule.Analysis{}, fmt.Errorf("gemini summarize: %w", err)
	}
	return a, nil
}

func (e *Engine) generate(ctx context.Context, parts []genai.Part) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response")
	}
	txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("first part is not text")
	}
	return strings.TrimSpace(string(txt)), nil
}

func ptrFloat32(v float32) *float32 { return &v }
