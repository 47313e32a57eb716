package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kamalsrini/PayrollTimecardAgent/ocr"
	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

// Failure records one file that could not be processed. Failures never
// abort a run; remaining files continue.
type Failure struct {
	File string
	Err  error
}

// Result summarizes one pipeline pass over an input directory.
type Result struct {
	TabularFiles  []string
	ImageFiles    []string
	OtherFiles    []string
	Processed     []string
	Failures      []Failure
	ImagesSkipped bool
	Records       []timesheet.Record
}

// Service runs the full extraction pass: scan, route, extract,
// normalize. One Service handles one configuration; runs are one-shot
// and synchronous.
type Service struct {
	Locator    *GridLocator
	Normalizer *Normalizer
	Engine     ocr.Engine
	// FilenameFilter is the substring input file names must contain
	// (matched case-insensitively on this entry point).
	FilenameFilter string
	// Logf receives human-readable progress lines; nil discards them.
	Logf func(format string, args ...any)
}

func (s *Service) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

// Run scans dir, routes every file, and extracts records from each
// matching tabular and image source. Per-file errors are collected and
// logged, never propagated; only an unreadable input directory fails the
// pass outright.
func (s *Service) Run(ctx context.Context, dir string) (*Result, error) {
	result := &Result{}

	if err := s.scan(dir, result); err != nil {
		return nil, err
	}

	s.logf("Found files: %d tabular, %d image, %d other\n",
		len(result.TabularFiles), len(result.ImageFiles), len(result.OtherFiles))

	s.processTabular(result)
	s.processImages(ctx, result)

	return result, nil
}

func (s *Service) scan(dir string, result *Result) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scan input folder %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		kind := ClassifyExtension(path)
		if kind == SourceOther || !MatchesFilter(path, s.FilenameFilter, true) {
			result.OtherFiles = append(result.OtherFiles, path)
			continue
		}

		switch kind {
		case SourceTabular:
			result.TabularFiles = append(result.TabularFiles, path)
		case SourceImage:
			result.ImageFiles = append(result.ImageFiles, path)
		}
	}

	// Directory order is platform-dependent; sort for deterministic runs.
	sort.Strings(result.TabularFiles)
	sort.Strings(result.ImageFiles)
	sort.Strings(result.OtherFiles)

	return nil
}

func (s *Service) processTabular(result *Result) {
	for _, path := range result.TabularFiles {
		s.logf("Processing: %s\n", filepath.Base(path))

		grids, err := ReadWorkbook(path)
		if err != nil {
			s.logf("  error processing %s: %v\n", filepath.Base(path), err)
			result.Failures = append(result.Failures, Failure{File: path, Err: err})
			continue
		}

		for _, grid := range grids {
			fields, ok := s.Locator.Locate(grid)
			if !ok {
				s.logf("  no employee data found in sheet %s\n", grid.Name)
				continue
			}

			record := s.Normalizer.FromGrid(fields, path)
			result.Records = append(result.Records, record)
			s.logf("  found: %s - %g hours (sheet %s)\n", record.EmployeeName, record.TotalHours, grid.Name)
		}

		result.Processed = append(result.Processed, path)
	}
}

func (s *Service) processImages(ctx context.Context, result *Result) {
	if len(result.ImageFiles) == 0 {
		return
	}

	if s.Engine == nil || !s.Engine.Available() {
		result.ImagesSkipped = true
		s.logf("Warning: OCR engine unavailable, skipping %d image file(s)\n", len(result.ImageFiles))
		return
	}

	for _, path := range result.ImageFiles {
		s.logf("Processing: %s\n", filepath.Base(path))

		text, err := s.Engine.ExtractText(ctx, path)
		if err != nil {
			s.logf("  error processing %s: %v\n", filepath.Base(path), err)
			result.Failures = append(result.Failures, Failure{File: path, Err: err})
			continue
		}
		if strings.TrimSpace(text) == "" {
			s.logf("  no text extracted from %s\n", filepath.Base(path))
			result.Processed = append(result.Processed, path)
			continue
		}

		sheet := ParseText(text)
		record := s.Normalizer.FromText(sheet, path)
		result.Records = append(result.Records, record)
		s.logf("  found: %s - %g hours\n", record.EmployeeName, record.TotalHours)
		if !sheet.TotalsMatch() {
			s.logf("  note: declared total %d differs from daily sum %d\n", sheet.TotalHours, sheet.DailySum())
		}

		result.Processed = append(result.Processed, path)
	}
}
