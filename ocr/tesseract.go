package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine runs recognition through the gosseract client.
type TesseractEngine struct {
	// Languages are trained-data hints passed to Tesseract (e.g. "eng").
	Languages []string
	// PageSegMode is the Tesseract page segmentation mode.
	PageSegMode int

	probeOnce sync.Once
	available bool
}

// NewTesseractEngine constructs a Tesseract-backed engine.
func NewTesseractEngine(languages []string, pageSegMode int) *TesseractEngine {
	return &TesseractEngine{Languages: languages, PageSegMode: pageSegMode}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Available probes once for a Tesseract installation at the usual
// locations. The engine never installs anything itself.
func (e *TesseractEngine) Available() bool {
	e.probeOnce.Do(func() {
		e.available = tesseractInstalled()
	})
	return e.available
}

// ExtractText preprocesses the image for recognition and returns the raw
// extracted text. The intermediate preprocessed image is deleted on both
// success and failure paths.
func (e *TesseractEngine) ExtractText(ctx context.Context, imagePath string) (string, error) {
	if !e.Available() {
		return "", ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	processedPath, cleanup, err := Preprocess(imagePath)
	if err != nil {
		// Recognition still works on the raw image, just less reliably.
		processedPath = imagePath
		cleanup = func() {}
	}
	defer cleanup()

	client := gosseract.NewClient()
	defer client.Close()

	if len(e.Languages) > 0 {
		if err := client.SetLanguage(e.Languages...); err != nil {
			return "", fmt.Errorf("set ocr languages: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(e.PageSegMode)); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}
	if err := client.SetImage(processedPath); err != nil {
		return "", fmt.Errorf("set ocr image %s: %w", imagePath, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", imagePath, err)
	}

	return text, nil
}

// tesseractInstalled looks for the tesseract binary on PATH and at known
// installation locations.
func tesseractInstalled() bool {
	if _, err := exec.LookPath("tesseract"); err == nil {
		return true
	}

	knownPaths := []string{
		"/usr/bin/tesseract",
		"/usr/local/bin/tesseract",
		"/opt/homebrew/bin/tesseract",
	}
	for _, path := range knownPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return true
		}
	}

	return false
}

// DescribeLanguages renders the language hints for log lines.
func (e *TesseractEngine) DescribeLanguages() string {
	if len(e.Languages) == 0 {
		return "default"
	}
	return strings.Join(e.Languages, "+")
}
