package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oremus-tools/sigla/core/canon"
	"github.com/oremus-tools/sigla/core/corpus"
	cerrors "github.com/oremus-tools/sigla/core/errors"
	"github.com/oremus-tools/sigla/core/refs"
	"github.com/oremus-tools/sigla/core/sigla"
)

// stubEngine returns canned OCR output. Calls are counted so cache behavior
// can be asserted.
type stubEngine struct {
	text  string
	err   error
	calls int
}

func (s *stubEngine) ExtractText(_ context.Context, _ io.Reader) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestServer(t *testing.T, engine *stubEngine) *Server {
	t.Helper()
	store := corpus.NewMemStore()
	for verse := 8; verse <= 14; verse++ {
		store.AddVerse(refs.DefaultVersion, canon.Luke, 2, verse, "and it came to pass")
	}
	pipeline := sigla.NewPipeline(refs.NewService(store, ""))
	srv, err := NewServer(Config{Port: 0}, engine, pipeline)
	if err != nil {
		t.Fatalf("NewServer() error: %v", err)
	}
	return srv
}

func uploadRequest(t *testing.T, target string, imageBytes []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "page.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(imageBytes); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestIndexForm(t *testing.T) {
	srv := newTestServer(t, &stubEngine{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="image"`) {
		t.Error("upload form missing from index page")
	}
}

func TestAPIScanSuccess(t *testing.T) {
	engine := &stubEngine{text: "Czytanie: Łk 2,8-14"}
	srv := newTestServer(t, engine)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, uploadRequest(t, "/api/scan", []byte("fake image")))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ExtractedText string         `json:"extracted_text"`
		References    []string       `json:"references"`
		Results       []sigla.Result `json:"results"`
		Warning       string         `json:"warning"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ExtractedText != engine.text {
		t.Errorf("extracted_text = %q", resp.ExtractedText)
	}
	if len(resp.References) != 1 || resp.References[0] != "Luke 2:8-14" {
		t.Errorf("references = %v", resp.References)
	}
	if len(resp.Results) != 1 || resp.Results[0].Label != "Luke 2:8-14" {
		t.Errorf("results = %+v", resp.Results)
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning %q", resp.Warning)
	}
}

func TestAPIScanNothingFound(t *testing.T) {
	srv := newTestServer(t, &stubEngine{text: "Notatki bez cytatów."})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, uploadRequest(t, "/api/scan", []byte("fake image")))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Warning string `json:"warning"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Warning == "" {
		t.Error("expected a no-citations warning")
	}
}

func TestAPIScanEngineUnavailable(t *testing.T) {
	engine := &stubEngine{err: &cerrors.ExtractionError{Engine: "tesseract", Err: cerrors.ErrEngineUnavailable}}
	srv := newTestServer(t, engine)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, uploadRequest(t, "/api/scan", []byte("fake image")))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected error message")
	}
}

func TestAPIScanBadUpload(t *testing.T) {
	srv := newTestServer(t, &stubEngine{})
	req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader("not multipart"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOCRResultCached(t *testing.T) {
	engine := &stubEngine{text: "Łk 2,8-14"}
	srv := newTestServer(t, engine)
	handler := srv.Handler()

	image := []byte("same image bytes")
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, uploadRequest(t, "/api/scan", image))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	if engine.calls != 1 {
		t.Errorf("engine called %d times, want 1 (second hit served from cache)", engine.calls)
	}
}

func TestUploadPageRendersResults(t *testing.T) {
	engine := &stubEngine{text: "Łk 2,8-14"}
	srv := newTestServer(t, engine)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, uploadRequest(t, "/", []byte("fake image")))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Luke 2:8-14") {
		t.Error("rendered page missing citation label")
	}
	if !strings.Contains(body, "Extracted text") {
		t.Error("rendered page missing extracted text section")
	}
}
