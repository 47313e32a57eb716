// Package ocr defines the narrow contract between the extraction
// pipeline and an OCR provider. The pipeline treats the engine purely as
// an injected capability with an availability status; installing or
// configuring the underlying tool is out of scope here.
package ocr

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when text extraction is attempted against
// an engine whose backing tool cannot be found.
var ErrUnavailable = errors.New("ocr engine unavailable")

// Engine extracts raw text from one image file. Implementations may be
// imperfect or noisy; callers must tolerate arbitrary output.
type Engine interface {
	Name() string
	// Available reports whether the backing OCR tool can be used.
	// Absence downgrades image processing to a skip with a warning, it
	// never hard-fails a run.
	Available() bool
	ExtractText(ctx context.Context, imagePath string) (string, error)
}

// NoopEngine is the engine used when OCR is disabled or absent.
type NoopEngine struct{}

func (NoopEngine) Name() string { return "noop" }

func (NoopEngine) Available() bool { return false }

func (NoopEngine) ExtractText(context.Context, string) (string, error) {
	return "", ErrUnavailable
}
