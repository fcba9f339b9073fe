package handle

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"schedule-scanner/api/internal/scanner"
	"schedule-scanner/api/internal/schedule"
)

type ProcessRequest struct {
	LLMName  string `json:"llm_name,omitempty"`
	ImageB64 string `json:"image_b64"`
}

type ProcessResponse struct {
	RawSchedule schedule.Data     `json:"raw_schedule"`
	Analysis    schedule.Analysis `json:"analysis"`
	Week        []string          `json:"week,omitempty"`
	SavedPath   string            `json:"saved_path"`
	Engine      string            `json:"engine"`
}

// Process is the JSON surface: base64 image in, stored record out.
// POST /v1/schedule/process
func (h *Handle) Process(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	img, err := base64.StdEncoding.DecodeString(strings.TrimSpace(req.ImageB64))
	if err != nil || len(img) == 0 {
		http.Error(w, "bad image_b64", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 180*time.Second)
	defer cancel()

	res, err := h.Scanner.Process(ctx, img, req.LLMName)
	if err != nil {
		if errors.Is(err, scanner.ErrDuplicateWeek) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"error":    err.Error(),
				"employee": res.Schedule.EmployeeName,
				"week":     res.Week,
			})
			return
		}
		http.Error(w, "process error: "+err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, ProcessResponse{
		RawSchedule: res.Schedule,
		Analysis:    res.Analysis,
		Week:        res.Week,
		SavedPath:   res.SavedPath,
		Engine:      res.Engine,
	})
}

// Records lists an employee's saved schedule records, oldest first.
// GET /v1/schedule/records?employee=Jane+Doe
func (h *Handle) Records(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}
	employee := strings.TrimSpace(r.URL.Query().Get("employee"))
	if employee == "" {
		http.Error(w, "missing employee query param", http.StatusBadRequest)
		return
	}

	recs, err := h.Store.List(employee)
	if err != nil {
		http.Error(w, "list error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"employee": employee,
		"count":    len(recs),
		"records":  recs,
	})
}
