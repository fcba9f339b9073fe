package main

import (
	"log"
	"net/http"

	"schedule-scanner/api/internal/config"
	"schedule-scanner/api/internal/handle"
	"schedule-scanner/api/internal/llm"
	"schedule-scanner/api/internal/llm/anthropic"
	"schedule-scanner/api/internal/llm/gemini"
	"schedule-scanner/api/internal/scanner"
	"schedule-scanner/api/internal/store"
)

func main() {
	cfg := config.Load()

	engines := &llm.Engines{
		Anthropic: anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel),
	}
	if cfg.GeminiAPIKey != "" {
		engines.Gemini = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	st := store.New(cfg.SchedulesDir)
	sc := scanner.New(engines, st)
	h := handle.New(sc, st)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", h.Index)
	mux.HandleFunc("/process", h.ProcessForm)
	mux.HandleFunc("/v1/schedule/process", h.Process)
	mux.HandleFunc("/v1/schedule/records", h.Records)

	addr := ":" + cfg.Port
	log.Printf("schedule-scanner listening on %s (records under %s)", addr, cfg.SchedulesDir)
	log.Fatal(http.ListenAndServe(addr, mux))
}
