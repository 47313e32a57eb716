package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

func workbookClock() time.Time {
	return time.Date(2025, 10, 6, 9, 30, 0, 0, time.UTC)
}

func writePayrollWorkbook(t *testing.T, path string) {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetCellValue("Sheet1", "A1", "Payroll Totals"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save payroll workbook fixture: %v", err)
	}
}

func TestWorkbookUpdater_AppendsTimesheetSheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "3 - Payroll Totals.xlsx")
	writePayrollWorkbook(t, path)

	updater := &WorkbookUpdater{Now: workbookClock}
	records := []timesheet.Record{
		{
			EmployeeName: "Jane Doe",
			TotalHours:   32.5,
			Period:       "6 - 10 October 2025",
			Title:        "Analyst",
			SourceFile:   "Jane Time Sheet.xlsx",
			ExtractedAt:  "2025-10-05 08:00:00",
		},
	}

	result, err := updater.Update(path, records)
	if err != nil {
		t.Fatalf("update workbook: %v", err)
	}

	if result.OutputPath != path {
		t.Fatalf("expected in-place update, got output %q", result.OutputPath)
	}
	if _, err := os.Stat(result.BackupPath); err != nil {
		t.Fatalf("expected backup at %q: %v", result.BackupPath, err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	if idx, _ := file.GetSheetIndex("Timesheet Data"); idx < 0 {
		t.Fatalf("expected Timesheet Data sheet, got sheets %v", file.GetSheetList())
	}

	name, err := file.GetCellValue("Timesheet Data", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "Jane Doe" {
		t.Fatalf("unexpected employee cell: %q", name)
	}

	// The sheet stamps the write time, not the record's extraction time.
	stamp, err := file.GetCellValue("Timesheet Data", "F2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if stamp != "2025-10-06 09:30:00" {
		t.Fatalf("unexpected extraction date cell: %q", stamp)
	}

	original, err := file.GetCellValue("Sheet1", "A1")
	if err != nil {
		t.Fatalf("read original cell: %v", err)
	}
	if original != "Payroll Totals" {
		t.Fatalf("original sheet content lost: %q", original)
	}
}

func TestWorkbookUpdater_RerunReplacesSheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "payroll.xlsx")
	writePayrollWorkbook(t, path)

	updater := &WorkbookUpdater{Now: workbookClock}
	first := []timesheet.Record{{EmployeeName: "Jane Doe", TotalHours: 40}}
	second := []timesheet.Record{{EmployeeName: "John Smith", TotalHours: 22}}

	if _, err := updater.Update(path, first); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if _, err := updater.Update(path, second); err != nil {
		t.Fatalf("second update: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	name, err := file.GetCellValue("Timesheet Data", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "John Smith" {
		t.Fatalf("expected rerun to replace sheet, got %q", name)
	}

	stale, err := file.GetCellValue("Timesheet Data", "A3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if stale != "" {
		t.Fatalf("expected no stale rows, got %q", stale)
	}
}

func TestWorkbookUpdater_MissingWorkbookFails(t *testing.T) {
	t.Parallel()

	updater := &WorkbookUpdater{Now: workbookClock}
	_, err := updater.Update(filepath.Join(t.TempDir(), "missing.xlsx"), nil)
	if !errors.Is(err, ErrPayrollFileMissing) {
		t.Fatalf("expected ErrPayrollFileMissing, got %v", err)
	}
}
