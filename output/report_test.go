package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

func reportClock() time.Time {
	return time.Date(2025, 10, 6, 9, 30, 0, 0, time.UTC)
}

func TestReportWriter_ReportPathUsesFileStamp(t *testing.T) {
	t.Parallel()

	writer := &ReportWriter{Now: reportClock}
	got := writer.ReportPath("output")
	want := filepath.Join("output", "processing_report_20251006_093000.txt")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReportWriter_WriteRendersSummary(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.txt")
	writer := &ReportWriter{Now: reportClock}

	records := []timesheet.Record{
		{EmployeeName: "Jane Doe", TotalHours: 40, SourceType: timesheet.SourceTabular},
		{EmployeeName: "John Smith", TotalHours: 22, SourceType: timesheet.SourceImage},
	}
	processed := []string{"/in/Jane timesheet.xlsx", "/in/john timesheet.png"}

	if err := writer.Write(path, "/in", "/out", processed, records); err != nil {
		t.Fatalf("write report: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(content)

	for _, want := range []string{
		"PAYROLL PROCESSING REPORT",
		"Processing Date: 2025-10-06 09:30:00",
		"Jane timesheet.xlsx",
		"Jane Doe: 40 hours (tabular)",
		"John Smith: 22 hours (image)",
		"Total Employees: 2",
		"Total Hours: 62",
		"Average Hours: 31.0",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReportWriter_EmptyRecordSetReportsZeroAverage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.txt")
	writer := &ReportWriter{Now: reportClock}

	if err := writer.Write(path, "/in", "/out", nil, nil); err != nil {
		t.Fatalf("write report: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(content), "Average Hours: 0.0") {
		t.Fatalf("expected zero average for empty record set:\n%s", content)
	}
}
