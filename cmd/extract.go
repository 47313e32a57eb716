package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kamalsrini/PayrollTimecardAgent/config"
	"github.com/kamalsrini/PayrollTimecardAgent/consolidate"
	"github.com/kamalsrini/PayrollTimecardAgent/extractor"
	"github.com/kamalsrini/PayrollTimecardAgent/output"
	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

var (
	extractDir    string
	extractFilter string
	extractCSV    string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract timesheet data from spreadsheet files only",
	Long: `Standalone tabular extraction: scan a directory for spreadsheet
timesheets, print each extracted record, export them to CSV, and print
per-employee summed hours.

Unlike "process", this entry point matches file names case-sensitively
against "Time Sheet" (configurable via extract.filename_filter), does not
touch images or the payroll workbook, and sums hours across records for
the same employee instead of keeping only the most recent record. The
two filters and consolidation modes are historical and intentionally
distinct.`,
	Example: `
  # Extract from the current directory
  payrolltimecard extract

  # Extract from a specific folder with a custom CSV target
  payrolltimecard extract --dir ./sheets --csv ./extracted.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		if extractDir != "" {
			cfg.Extract.Dir = extractDir
		}
		if extractFilter != "" {
			cfg.Extract.FilenameFilter = extractFilter
		}

		files, err := findTabularTimesheets(cfg.Extract.Dir, cfg.Extract.FilenameFilter)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no timesheet files found in %s (names must contain %q)",
				cfg.Extract.Dir, cfg.Extract.FilenameFilter)
		}

		fmt.Printf("Found %d timesheet file(s):\n", len(files))
		for _, file := range files {
			fmt.Printf("  - %s\n", filepath.Base(file))
		}

		locator := &extractor.GridLocator{HoursFallbackColumn: cfg.Grid.HoursFallbackColumn}
		normalizer := &extractor.Normalizer{ImageTitle: cfg.OCR.ImageTitle}

		records := extractTabularRecords(files, locator, normalizer)
		if len(records) == 0 {
			return errors.New("no employee data found in any timesheet file")
		}

		fmt.Println("\nEXTRACTION SUMMARY")
		for _, record := range records {
			fmt.Printf("Employee: %s\n", record.EmployeeName)
			fmt.Printf("  File: %s\n", record.SourceFile)
			fmt.Printf("  Hours: %g\n", record.TotalHours)
			fmt.Printf("  Period: %s\n", record.Period)
			fmt.Printf("  Title: %s\n", record.Title)
			fmt.Printf("  Project Manager: %s\n", record.ProjectManager)
			fmt.Printf("  Client/Firm: %s / %s\n", record.Client, record.Firm)
		}

		writer := &output.CSVWriter{}
		if err := writer.Write(extractCSV, records); err != nil {
			return err
		}
		fmt.Printf("\nData exported to: %s\n", extractCSV)

		// This entry point consolidates by summing hours per employee.
		sums, order := consolidate.SumByEmployee(records)
		fmt.Println("\nCONSOLIDATED DATA FOR PAYROLL")
		var total float64
		for _, name := range order {
			fmt.Printf("%s: %g hours\n", name, sums[name])
			total += sums[name]
		}
		fmt.Printf("\nTotal unique employees: %d\n", len(order))
		fmt.Printf("Total hours across all employees: %g\n", total)

		return nil
	},
}

func findTabularTimesheets(dir, filter string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if extractor.ClassifyExtension(path) != extractor.SourceTabular {
			continue
		}
		// The standalone entry point matches case-sensitively.
		if !extractor.MatchesFilter(path, filter, false) {
			continue
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

func extractTabularRecords(files []string, locator *extractor.GridLocator, normalizer *extractor.Normalizer) []timesheet.Record {
	records := make([]timesheet.Record, 0, len(files))

	for _, path := range files {
		fmt.Printf("\nProcessing: %s\n", filepath.Base(path))

		grids, err := extractor.ReadWorkbook(path)
		if err != nil {
			fmt.Printf("  error processing %s: %v\n", filepath.Base(path), err)
			continue
		}

		for _, grid := range grids {
			fields, ok := locator.Locate(grid)
			if !ok {
				fmt.Printf("  no employee data found in sheet %s\n", grid.Name)
				continue
			}
			record := normalizer.FromGrid(fields, path)
			records = append(records, record)
			fmt.Printf("  found: %s - %g hours (sheet %s)\n", record.EmployeeName, record.TotalHours, grid.Name)
		}
	}

	return records
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractDir, "dir", "d", "", "Directory to scan for timesheet spreadsheets (default from config: .)")
	extractCmd.Flags().StringVar(&extractFilter, "filter", "", "Filename substring filter for this run (case-sensitive)")
	extractCmd.Flags().StringVar(&extractCSV, "csv", "extracted_timesheet_data.csv", "Path of the CSV export")
}
