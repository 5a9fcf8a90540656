package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	cerrors "github.com/oremus-tools/sigla/core/errors"
	"github.com/oremus-tools/sigla/core/refs"
	"github.com/oremus-tools/sigla/core/sigla"
	"github.com/oremus-tools/sigla/internal/cache"
	"github.com/oremus-tools/sigla/internal/logging"
)

// User-facing messages. Everything else the pipeline skips stays invisible.
const (
	msgEngineUnavailable = "The OCR engine is not available. Install Tesseract and make sure it is on PATH."
	msgExtractionFailed  = "Text extraction failed for the uploaded image."
	msgNothingFound      = "No scripture citations were found in the uploaded material."
	msgBadUpload         = "Please attach an image file under the field name \"image\"."
)

// viewData feeds the upload template.
type viewData struct {
	Error         string
	Warning       string
	ExtractedText string
	References    []refs.Reference
	Results       []sigla.Result
}

// scanOutcome is the result of one upload request.
type scanOutcome struct {
	status int
	view   viewData
}

// handleIndex serves the upload form and processes form submissions.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.render(w, http.StatusOK, viewData{})
	case http.MethodPost:
		outcome := s.scanUpload(r)
		s.render(w, outcome.status, outcome.view)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleAPIScan is the JSON variant of the upload flow.
func (s *Server) handleAPIScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	outcome := s.scanUpload(r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(outcome.status)

	if outcome.view.Error != "" {
		json.NewEncoder(w).Encode(map[string]string{"error": outcome.view.Error})
		return
	}

	labels := make([]string, 0, len(outcome.view.References))
	for _, ref := range outcome.view.References {
		labels = append(labels, ref.String())
	}
	json.NewEncoder(w).Encode(struct {
		ExtractedText string         `json:"extracted_text"`
		References    []string       `json:"references"`
		Results       []sigla.Result `json:"results"`
		Warning       string         `json:"warning,omitempty"`
	}{
		ExtractedText: outcome.view.ExtractedText,
		References:    labels,
		Results:       outcome.view.Results,
		Warning:       outcome.view.Warning,
	})
}

// scanUpload reads the uploaded image, extracts text (through the OCR result
// cache), and runs the citation pipeline.
func (s *Server) scanUpload(r *http.Request) scanOutcome {
	ctx := r.Context()

	if err := r.ParseMultipartForm(MaxFormMemory); err != nil {
		return scanOutcome{http.StatusBadRequest, viewData{Error: msgBadUpload}}
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		return scanOutcome{http.StatusBadRequest, viewData{Error: msgBadUpload}}
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil || len(data) == 0 || len(data) > MaxUploadBytes {
		return scanOutcome{http.StatusBadRequest, viewData{Error: msgBadUpload}}
	}

	key := cache.DigestKey(data)
	text, hit := s.ocrCache.Get(key)
	if !hit {
		text, err = s.engine.ExtractText(ctx, bytes.NewReader(data))
		if err != nil {
			if cerrors.IsEngineUnavailable(err) {
				logging.ErrorContext(ctx, "ocr engine unavailable", "error", err)
				return scanOutcome{http.StatusServiceUnavailable, viewData{Error: msgEngineUnavailable}}
			}
			logging.ErrorContext(ctx, "ocr extraction failed", "error", err)
			return scanOutcome{http.StatusInternalServerError, viewData{Error: msgExtractionFailed}}
		}
		s.ocrCache.Put(key, text)
	}

	results, references, err := s.pipeline.Run(ctx, text)
	if err != nil {
		logging.ErrorContext(ctx, "pipeline failed", "error", err)
		return scanOutcome{http.StatusInternalServerError, viewData{Error: "Resolving citations failed."}}
	}
	logging.PipelineEvent(ctx, "scan", "references", len(references), "results", len(results), "cache_hit", hit)

	view := viewData{
		ExtractedText: text,
		References:    references,
		Results:       results,
	}
	if len(results) == 0 {
		view.Warning = msgNothingFound
	}
	return scanOutcome{http.StatusOK, view}
}

// render writes the upload page.
func (s *Server) render(w http.ResponseWriter, status int, view viewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "upload.html", view); err != nil {
		logging.Error("template execution failed", "error", err)
	}
}
