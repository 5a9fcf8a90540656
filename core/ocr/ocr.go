// Package ocr defines the OCR collaborator boundary and its Tesseract
// implementation. The pipeline only needs raw text; image preprocessing
// beyond what the engine does itself is out of scope.
package ocr

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	cerrors "github.com/oremus-tools/sigla/core/errors"
)

// Engine converts an image into raw text. An engine that finds no text
// returns an empty string and no error; only an unusable engine or a failed
// run produce errors.
type Engine interface {
	ExtractText(ctx context.Context, image io.Reader) (string, error)
}

// DefaultLanguages is the tesseract language pack selection used when none
// is configured. Polish first: the alias table's primary source language.
const DefaultLanguages = "pol+eng"

// Tesseract runs the tesseract binary over stdin/stdout.
type Tesseract struct {
	// Binary is the executable name or path. Defaults to "tesseract".
	Binary string
	// Languages is the -l argument. Defaults to DefaultLanguages.
	Languages string
}

// NewTesseract returns a Tesseract engine with default settings.
func NewTesseract() *Tesseract {
	return &Tesseract{Binary: "tesseract", Languages: DefaultLanguages}
}

// ExtractText implements Engine. A missing binary yields an ExtractionError
// wrapping ErrEngineUnavailable so callers can surface the hard engine
// failure distinctly from a failed run.
func (t *Tesseract) ExtractText(ctx context.Context, image io.Reader) (string, error) {
	binary := t.Binary
	if binary == "" {
		binary = "tesseract"
	}
	languages := t.Languages
	if languages == "" {
		languages = DefaultLanguages
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return "", &cerrors.ExtractionError{Engine: binary, Err: cerrors.ErrEngineUnavailable}
	}

	cmd := exec.CommandContext(ctx, path, "stdin", "stdout", "-l", languages)
	cmd.Stdin = image
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = cerrors.Wrap(err, msg)
		}
		return "", &cerrors.ExtractionError{Engine: binary, Err: err}
	}
	return stdout.String(), nil
}
