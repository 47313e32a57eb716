package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_DefaultsAreValid(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("validate example config: %v", err)
	}

	if cfg.Process.FilenameFilter != "time" {
		t.Fatalf("unexpected process filter: %q", cfg.Process.FilenameFilter)
	}
	if cfg.Extract.FilenameFilter != "Time Sheet" {
		t.Fatalf("unexpected extract filter: %q", cfg.Extract.FilenameFilter)
	}
	if cfg.Grid.HoursFallbackColumn != 4 {
		t.Fatalf("unexpected fallback column: %d", cfg.Grid.HoursFallbackColumn)
	}
	if cfg.OCR.ImageTitle != "Credentialing Specialist" {
		t.Fatalf("unexpected image title: %q", cfg.OCR.ImageTitle)
	}
}

func TestValidateYAMLContent_EmptyContentFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(""))
	if err != nil {
		t.Fatalf("validate empty config: %v", err)
	}
	if cfg.Process.InputDir != "input_files" || cfg.Process.OutputDir != "output" {
		t.Fatalf("defaults not applied: %+v", cfg.Process)
	}
}

func TestValidateYAMLContent_RejectsBadFallbackColumn(t *testing.T) {
	t.Parallel()

	content := `
grid:
  hours_fallback_column: 0
`
	_, err := ValidateYAMLContent([]byte(content))
	if err == nil {
		t.Fatalf("expected validation error for fallback column 0")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsOutOfRangePageSegMode(t *testing.T) {
	t.Parallel()

	content := `
ocr:
  page_seg_mode: 99
`
	if _, err := ValidateYAMLContent([]byte(content)); err == nil {
		t.Fatalf("expected validation error for page_seg_mode 99")
	}
}
