package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kamalsrini/PayrollTimecardAgent/internal/timeutil"
	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

// ReportWriter produces the human-readable processing report.
type ReportWriter struct {
	// Now supplies the processing timestamp; nil means time.Now.
	Now func() time.Time
}

func (w *ReportWriter) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// ReportPath returns the timestamped report location inside outputDir.
func (w *ReportWriter) ReportPath(outputDir string) string {
	name := fmt.Sprintf("processing_report_%s.txt", timeutil.FileStamp(w.now()))
	return filepath.Join(outputDir, name)
}

// Write renders the report: every processed file, every consolidated
// record with hours and source type, and summary totals. The average is
// reported as 0 for an empty record set; the report never divides by
// zero.
func (w *ReportWriter) Write(path, inputDir, outputDir string, processedFiles []string, records []timesheet.Record) error {
	var b strings.Builder

	b.WriteString("PAYROLL PROCESSING REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Processing Date: %s\n", timeutil.Stamp(w.now()))
	fmt.Fprintf(&b, "Input Folder: %s\n", inputDir)
	fmt.Fprintf(&b, "Output Folder: %s\n\n", outputDir)

	b.WriteString("PROCESSED FILES:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, file := range processedFiles {
		fmt.Fprintf(&b, "%s\n", filepath.Base(file))
	}

	b.WriteString("\nEMPLOYEE DATA:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	var totalHours float64
	for _, record := range records {
		fmt.Fprintf(&b, "%s: %g hours (%s)\n", record.EmployeeName, record.TotalHours, record.SourceType)
		totalHours += record.TotalHours
	}

	average := 0.0
	if len(records) > 0 {
		average = totalHours / float64(len(records))
	}

	b.WriteString("\nSUMMARY:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	fmt.Fprintf(&b, "Total Employees: %d\n", len(records))
	fmt.Fprintf(&b, "Total Hours: %g\n", totalHours)
	fmt.Fprintf(&b, "Average Hours: %.1f\n", average)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write processing report %s: %w", path, err)
	}

	return nil
}
