package extractor

import (
	"testing"
	"time"

	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

func fixedClock() time.Time {
	return time.Date(2025, 10, 6, 9, 30, 0, 0, time.UTC)
}

func TestNormalizer_FromGrid(t *testing.T) {
	t.Parallel()

	n := &Normalizer{ImageTitle: "Credentialing Specialist", Now: fixedClock}
	record := n.FromGrid(GridFields{
		Name:           "Jane Doe",
		Title:          "Analyst",
		Period:         "6 - 10 October 2025",
		ProjectManager: "Sam Lee",
		Firm:           "Acme Staffing",
		TotalHours:     32.5,
	}, "/in/Jane Time Sheet.xlsx")

	if record.SourceType != timesheet.SourceTabular {
		t.Fatalf("unexpected source type: %q", record.SourceType)
	}
	if record.SourceFile != "Jane Time Sheet.xlsx" {
		t.Fatalf("expected base name, got %q", record.SourceFile)
	}
	if record.EmployeeName != "Jane Doe" || record.TotalHours != 32.5 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.Title != "Analyst" || record.ProjectManager != "Sam Lee" || record.Firm != "Acme Staffing" {
		t.Fatalf("unexpected grid fields: %+v", record)
	}
	if record.Client != "" {
		t.Fatalf("tabular records carry no client, got %q", record.Client)
	}
	if record.ExtractedAt != "2025-10-06 09:30:00" {
		t.Fatalf("unexpected extraction stamp: %q", record.ExtractedAt)
	}
}

func TestNormalizer_FromTextUsesImageDefaults(t *testing.T) {
	t.Parallel()

	n := &Normalizer{ImageTitle: "Credentialing Specialist", Now: fixedClock}
	record := n.FromText(TextTimesheet{
		EmployeeName: "John Smith",
		WeekPeriod:   "October 6",
		TotalHours:   22,
	}, "/in/john timesheet.png")

	if record.SourceType != timesheet.SourceImage {
		t.Fatalf("unexpected source type: %q", record.SourceType)
	}
	if record.Title != "Credentialing Specialist" {
		t.Fatalf("expected placeholder title, got %q", record.Title)
	}
	if record.ProjectManager != "" || record.Client != "" || record.Firm != "" {
		t.Fatalf("image records carry no PM/client/firm: %+v", record)
	}
	if record.TotalHours != 22 || record.Period != "October 6" {
		t.Fatalf("unexpected record: %+v", record)
	}
}
