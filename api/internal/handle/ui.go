package handle

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"

	"schedule-scanner/api/internal/scanner"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const maxUploadBytes = 10 << 20 // 10 MiB

type indexData struct {
	Error     string
	Notice    string
	HasGemini bool
}

type resultData struct {
	Result scanner.Result
}

// Index renders the upload form. GET /
func (h *Handle) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.renderIndex(w, indexData{HasGemini: h.hasGemini()})
}

// ProcessForm handles the browser upload. POST /process
func (h *Handle) ProcessForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.renderIndex(w, indexData{Error: "upload too large or malformed: " + err.Error(), HasGemini: h.hasGemini()})
		return
	}

	file, _, err := r.FormFile("schedule")
	if err != nil {
		h.renderIndex(w, indexData{Error: "choose an image file first", HasGemini: h.hasGemini()})
		return
	}
	defer file.Close()
	img, err := io.ReadAll(file)
	if err != nil {
		h.renderIndex(w, indexData{Error: "read upload: " + err.Error(), HasGemini: h.hasGemini()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 180*time.Second)
	defer cancel()

	res, err := h.Scanner.Process(ctx, img, r.FormValue("engine"))
	if err != nil {
		if errors.Is(err, scanner.ErrDuplicateWeek) {
			h.renderIndex(w, indexData{
				Notice:    "A schedule for this week has already been processed! If you need to update this week's schedule, please contact your administrator.",
				HasGemini: h.hasGemini(),
			})
			return
		}
		h.renderIndex(w, indexData{Error: err.Error(), HasGemini: h.hasGemini()})
		return
	}

	if err := pages.ExecuteTemplate(w, "result.html", resultData{Result: res}); err != nil {
		log.Printf("render result: %v", err)
	}
}

func (h *Handle) renderIndex(w http.ResponseWriter, data indexData) {
	if err := pages.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("render index: %v", err)
	}
}

func (h *Handle) hasGemini() bool {
	return h.Scanner != nil && h.Scanner.Engines != nil && h.Scanner.Engines.Gemini != nil
}
