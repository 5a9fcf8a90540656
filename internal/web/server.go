// Package web provides the sigla upload web server: one page that accepts a
// scanned image, runs OCR and the citation pipeline, and presents the
// resolved passages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/oremus-tools/sigla/core/ocr"
	"github.com/oremus-tools/sigla/core/sigla"
	"github.com/oremus-tools/sigla/internal/cache"
	"github.com/oremus-tools/sigla/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	// MaxFormMemory is the maximum memory for form parsing (32 MB).
	MaxFormMemory = 32 << 20
	// MaxUploadBytes is the largest accepted image upload (10 MB).
	MaxUploadBytes = 10 << 20
)

// Config holds server configuration.
type Config struct {
	Port      int
	CacheSize int // OCR result cache entries (0 = default)
}

// Server serves the upload page and the JSON scan API.
type Server struct {
	cfg      Config
	engine   ocr.Engine
	pipeline *sigla.Pipeline
	ocrCache cache.Cache[string, string]
	tmpl     *template.Template
}

// NewServer builds a server around an OCR engine and a citation pipeline.
func NewServer(cfg Config, engine ocr.Engine, pipeline *sigla.Pipeline) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	cacheCfg := cache.DefaultConfig()
	if cfg.CacheSize > 0 {
		cacheCfg.MaxSize = cfg.CacheSize
	}

	return &Server{
		cfg:      cfg,
		engine:   engine,
		pipeline: pipeline,
		ocrCache: cache.NewLRUCache[string, string](cacheCfg),
		tmpl:     tmpl,
	}, nil
}

// Handler returns the server's route tree wrapped in request-ID and request
// logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/scan", s.handleAPIScan)
	return logging.CombinedMiddleware(mux)
}

// ListenAndServe starts the server on the configured port.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	logging.Info("starting web server", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}
