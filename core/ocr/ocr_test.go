package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	cerrors "github.com/oremus-tools/sigla/core/errors"
)

func TestExtractTextEngineUnavailable(t *testing.T) {
	engine := &Tesseract{Binary: "tesseract-binary-that-does-not-exist"}
	_, err := engine.ExtractText(context.Background(), strings.NewReader("not an image"))
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !cerrors.IsEngineUnavailable(err) {
		t.Errorf("error = %v, want ErrEngineUnavailable", err)
	}

	var extractionErr *cerrors.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("error type = %T, want *ExtractionError", err)
	}
	if extractionErr.Engine != "tesseract-binary-that-does-not-exist" {
		t.Errorf("engine = %q", extractionErr.Engine)
	}
}

func TestNewTesseractDefaults(t *testing.T) {
	engine := NewTesseract()
	if engine.Binary != "tesseract" {
		t.Errorf("Binary = %q", engine.Binary)
	}
	if engine.Languages != DefaultLanguages {
		t.Errorf("Languages = %q", engine.Languages)
	}
}
