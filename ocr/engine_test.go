package ocr

import (
	"context"
	"errors"
	"testing"
)

func TestNoopEngine(t *testing.T) {
	t.Parallel()

	engine := NoopEngine{}
	if engine.Available() {
		t.Fatalf("noop engine must never be available")
	}

	_, err := engine.ExtractText(context.Background(), "timesheet.png")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestTesseractEngine_DescribeLanguages(t *testing.T) {
	t.Parallel()

	engine := NewTesseractEngine(nil, 6)
	if got := engine.DescribeLanguages(); got != "default" {
		t.Fatalf("expected default description, got %q", got)
	}

	engine = NewTesseractEngine([]string{"eng", "deu"}, 6)
	if got := engine.DescribeLanguages(); got != "eng+deu" {
		t.Fatalf("unexpected description: %q", got)
	}
}
