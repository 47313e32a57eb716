package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

// CSVWriter exports consolidated records as the flat payroll CSV.
type CSVWriter struct{}

var csvHeaders = []string{
	"source_type",
	"source_file",
	"employee_name",
	"total_hours",
	"period",
	"title",
	"project_manager",
	"client",
	"firm",
	"extraction_date",
}

// Write produces the consolidated export. Repeated writes of the same
// record slice produce byte-identical files; the only timestamps in the
// output are the ones embedded in the records themselves.
func (w *CSVWriter) Write(path string, records []timesheet.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.SourceType,
			record.SourceFile,
			record.EmployeeName,
			strconv.FormatFloat(record.TotalHours, 'f', -1, 64),
			record.Period,
			record.Title,
			record.ProjectManager,
			record.Client,
			record.Firm,
			record.ExtractedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
