package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kamalsrini/PayrollTimecardAgent/extractor"
	"github.com/kamalsrini/PayrollTimecardAgent/internal/timeutil"
	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

// ErrPayrollFileMissing marks an absent destination workbook. The
// caller treats this as fatal for the workbook update only; CSV and
// report outputs are unaffected.
var ErrPayrollFileMissing = errors.New("payroll workbook not found")

const timesheetSheetName = "Timesheet Data"

var timesheetSheetHeaders = []string{
	"Employee Name",
	"Total Hours",
	"Period",
	"Title",
	"Source File",
	"Extraction Date",
}

// WorkbookUpdater appends the consolidated ledger as a labeled sheet to
// the payroll workbook, after backing up the original.
type WorkbookUpdater struct {
	// Now supplies the backup suffix and the Extraction Date column;
	// nil means time.Now.
	Now func() time.Time
}

// UpdateResult reports where the updater wrote.
type UpdateResult struct {
	BackupPath string
	OutputPath string
}

func (u *WorkbookUpdater) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// Update backs up the workbook at path and appends a "Timesheet Data"
// sheet holding the records. Legacy .xls workbooks cannot be written in
// place; their sheets are copied into a new .xlsx next to the original,
// matching the historical conversion behavior. Backups are never deleted.
func (u *WorkbookUpdater) Update(path string, records []timesheet.Record) (*UpdateResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayrollFileMissing, path)
	}

	backupPath, err := u.backup(path)
	if err != nil {
		return nil, err
	}

	outputPath := path
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		outputPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx"
		err = u.rebuildLegacyWorkbook(path, outputPath, records)
	} else {
		err = u.updateModernWorkbook(path, records)
	}
	if err != nil {
		return nil, err
	}

	return &UpdateResult{BackupPath: backupPath, OutputPath: outputPath}, nil
}

func (u *WorkbookUpdater) backup(path string) (string, error) {
	ext := filepath.Ext(path)
	backupPath := fmt.Sprintf("%s_backup_%s%s", strings.TrimSuffix(path, ext), timeutil.FileStamp(u.now()), ext)

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open workbook for backup: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("create workbook backup %s: %w", backupPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copy workbook backup: %w", err)
	}

	return backupPath, nil
}

func (u *WorkbookUpdater) updateModernWorkbook(path string, records []timesheet.Record) error {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open payroll workbook %s: %w", path, err)
	}
	defer file.Close()

	// Re-running the pipeline replaces the sheet rather than stacking
	// duplicates.
	if idx, _ := file.GetSheetIndex(timesheetSheetName); idx >= 0 {
		if err := file.DeleteSheet(timesheetSheetName); err != nil {
			return fmt.Errorf("replace sheet %s: %w", timesheetSheetName, err)
		}
	}

	if err := u.writeTimesheetSheet(file, records); err != nil {
		return err
	}

	if err := file.Save(); err != nil {
		return fmt.Errorf("save payroll workbook %s: %w", path, err)
	}

	return nil
}

// rebuildLegacyWorkbook copies every sheet of a .xls workbook into a new
// .xlsx file and appends the timesheet sheet there.
func (u *WorkbookUpdater) rebuildLegacyWorkbook(sourcePath, outputPath string, records []timesheet.Record) error {
	grids, err := extractor.ReadWorkbook(sourcePath)
	if err != nil {
		return fmt.Errorf("read legacy payroll workbook: %w", err)
	}

	file := excelize.NewFile()
	defer file.Close()

	for i, grid := range grids {
		if i == 0 {
			if err := file.SetSheetName(file.GetSheetName(0), grid.Name); err != nil {
				return fmt.Errorf("rename sheet %s: %w", grid.Name, err)
			}
		} else {
			if _, err := file.NewSheet(grid.Name); err != nil {
				return fmt.Errorf("create sheet %s: %w", grid.Name, err)
			}
		}

		for r, row := range grid.Rows {
			for c, value := range row {
				if value == "" {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				if err := file.SetCellValue(grid.Name, cell, value); err != nil {
					return fmt.Errorf("copy cell %s!%s: %w", grid.Name, cell, err)
				}
			}
		}
	}

	if err := u.writeTimesheetSheet(file, records); err != nil {
		return err
	}

	if err := file.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save converted payroll workbook %s: %w", outputPath, err)
	}

	return nil
}

func (u *WorkbookUpdater) writeTimesheetSheet(file *excelize.File, records []timesheet.Record) error {
	if _, err := file.NewSheet(timesheetSheetName); err != nil {
		return fmt.Errorf("create sheet %s: %w", timesheetSheetName, err)
	}

	boldStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	widths := make([]int, len(timesheetSheetHeaders))
	for col, header := range timesheetSheetHeaders {
		widths[col] = len(header)
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(timesheetSheetName, cell, header); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
		if err := file.SetCellStyle(timesheetSheetName, cell, cell, boldStyle); err != nil {
			return fmt.Errorf("style header %s: %w", cell, err)
		}
	}

	extractionDate := timeutil.Stamp(u.now())
	for i, record := range records {
		row := i + 2
		values := []any{
			record.EmployeeName,
			record.TotalHours,
			record.Period,
			record.Title,
			record.SourceFile,
			extractionDate,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(timesheetSheetName, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
			if width := len(fmt.Sprint(value)); width > widths[col] {
				widths[col] = width
			}
		}
	}

	for col, width := range widths {
		adjusted := width + 2
		if adjusted > 50 {
			adjusted = 50
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := file.SetColWidth(timesheetSheetName, name, name, float64(adjusted)); err != nil {
			return fmt.Errorf("set column width %s: %w", name, err)
		}
	}

	return nil
}
