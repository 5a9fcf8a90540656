package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Resource: "book", ID: "Gandalf"}
	if got := err.Error(); got != "book not found: Gandalf" {
		t.Errorf("Error() = %q", got)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}

	noID := &NotFoundError{Resource: "translation"}
	if got := noID.Error(); got != "translation not found" {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseErrorUnwrapsToInvalidReference(t *testing.T) {
	err := &ParseError{Input: "Banana 3:16", Message: "unknown book"}
	if !IsInvalidReference(err) {
		t.Error("IsInvalidReference() = false, want true")
	}
	if !strings.Contains(err.Error(), "Banana 3:16") {
		t.Errorf("Error() = %q, want input echoed", err.Error())
	}

	// Explicit underlying error takes precedence over the sentinel.
	inner := stderrors.New("lexer failure")
	wrapped := &ParseError{Input: "x", Err: inner}
	if !stderrors.Is(wrapped, inner) {
		t.Error("expected wrapped error to match inner")
	}
}

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{Engine: "tesseract", Err: ErrEngineUnavailable}
	if !IsEngineUnavailable(err) {
		t.Error("IsEngineUnavailable() = false, want true")
	}
	if !strings.Contains(err.Error(), "tesseract") {
		t.Errorf("Error() = %q, want engine name", err.Error())
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := &ValidationError{Field: "image", Message: "empty upload"}
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Error("expected ValidationError to unwrap to ErrInvalidInput")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	base := stderrors.New("boom")
	wrapped := Wrap(base, "scanning")
	if !stderrors.Is(wrapped, base) {
		t.Error("wrapped error should match base")
	}
	if got := wrapped.Error(); got != "scanning: boom" {
		t.Errorf("Error() = %q", got)
	}

	wrappedf := Wrapf(base, "resolving %s", "Matthew 5")
	if got := wrappedf.Error(); got != "resolving Matthew 5: boom" {
		t.Errorf("Error() = %q", got)
	}
}
