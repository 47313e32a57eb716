package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamalsrini/PayrollTimecardAgent/config"
	"github.com/kamalsrini/PayrollTimecardAgent/consolidate"
	"github.com/kamalsrini/PayrollTimecardAgent/extractor"
	"github.com/kamalsrini/PayrollTimecardAgent/ocr"
	"github.com/kamalsrini/PayrollTimecardAgent/output"
	"github.com/kamalsrini/PayrollTimecardAgent/storage"
)

var (
	processInputDir    string
	processOutputDir   string
	processPayrollFile string
	processDBPath      string
	processFilter      string
	processSkipUpdate  bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the full timesheet pipeline: scan, extract, consolidate, report",
	Long: `Scan the input folder for timesheet spreadsheets and images, extract a
record per employee per source, consolidate duplicates by keeping the most
recently extracted record per employee, and write the results.

Outputs:
- <output>/consolidated_payroll_data.csv
- <output>/processing_report_<timestamp>.txt
- a "Timesheet Data" sheet appended to the payroll workbook, with a
  timestamped backup of the original taken first
- consolidated records appended to the local SQLite ledger

Input files must contain "time" in their name (case-insensitive,
configurable via process.filename_filter). A run with no matching files
or no extracted records fails with a non-zero exit and writes no CSV.

A missing payroll workbook fails only the workbook update; CSV, report,
and ledger are still produced.`,
	Example: `
  # Process ./input_files into ./output with defaults
  payrolltimecard process

  # Explicit folders and payroll workbook
  payrolltimecard process --input ./timesheets --output ./results --payroll-file "./3 - Payroll Totals.xls"

  # Skip the workbook update
  payrolltimecard process --skip-workbook-update

  # Custom filename filter for this run
  payrolltimecard process --filter timecard
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		applyProcessFlags(cfg)

		if err := ensureDir(cfg.Process.InputDir); err != nil {
			return err
		}
		if err := ensureDir(cfg.Process.OutputDir); err != nil {
			return err
		}

		engine := ocr.NewTesseractEngine(cfg.OCR.Languages, cfg.OCR.PageSegMode)
		service := &extractor.Service{
			Locator:        &extractor.GridLocator{HoursFallbackColumn: cfg.Grid.HoursFallbackColumn},
			Normalizer:     &extractor.Normalizer{ImageTitle: cfg.OCR.ImageTitle},
			Engine:         engine,
			FilenameFilter: cfg.Process.FilenameFilter,
			Logf:           func(format string, args ...any) { fmt.Printf(format, args...) },
		}

		fmt.Printf("Scanning input folder: %s\n", cfg.Process.InputDir)
		result, err := service.Run(cmd.Context(), cfg.Process.InputDir)
		if err != nil {
			return err
		}

		if len(result.TabularFiles)+len(result.ImageFiles) == 0 {
			return fmt.Errorf("no timesheet files found in %s (names must contain %q)",
				cfg.Process.InputDir, cfg.Process.FilenameFilter)
		}

		consolidated := consolidate.Run(result.Records)
		fmt.Printf("Consolidated %d records into %d unique employees\n",
			consolidated.RecordsIn, consolidated.Employees)

		if consolidated.Employees == 0 {
			return errors.New("no employee data extracted from any input file")
		}

		csvPath := filepath.Join(cfg.Process.OutputDir, "consolidated_payroll_data.csv")
		writer := &output.CSVWriter{}
		if err := writer.Write(csvPath, consolidated.Records); err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", csvPath)

		reporter := &output.ReportWriter{}
		reportPath := reporter.ReportPath(cfg.Process.OutputDir)
		if err := reporter.Write(reportPath, cfg.Process.InputDir, cfg.Process.OutputDir, result.Processed, consolidated.Records); err != nil {
			return err
		}
		fmt.Printf("Report saved to: %s\n", reportPath)

		if processSkipUpdate {
			fmt.Println("Payroll workbook update skipped.")
		} else {
			updatePayrollWorkbook(cfg.Process.PayrollFile, consolidated)
		}

		if err := persistLedger(cfg.Process.LedgerDB, consolidated); err != nil {
			return err
		}

		fmt.Printf("Processing completed. Files: %d, Failures: %d, Employees: %d\n",
			len(result.Processed), len(result.Failures), consolidated.Employees)

		return nil
	},
}

func applyProcessFlags(cfg *config.Config) {
	if processInputDir != "" {
		cfg.Process.InputDir = processInputDir
	}
	if processOutputDir != "" {
		cfg.Process.OutputDir = processOutputDir
	}
	if processPayrollFile != "" {
		cfg.Process.PayrollFile = processPayrollFile
	}
	if processDBPath != "" {
		cfg.Process.LedgerDB = processDBPath
	}
	if processFilter != "" {
		cfg.Process.FilenameFilter = processFilter
	}
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// updatePayrollWorkbook is fatal only for itself: a missing or broken
// destination workbook is logged, and the rest of the run stands.
func updatePayrollWorkbook(path string, consolidated *consolidate.Result) {
	updater := &output.WorkbookUpdater{}
	updateResult, err := updater.Update(path, consolidated.Records)
	if err != nil {
		fmt.Printf("Warning: payroll workbook not updated: %v\n", err)
		return
	}
	fmt.Printf("Payroll workbook updated: %s (backup: %s)\n", updateResult.OutputPath, updateResult.BackupPath)
}

func persistLedger(dbPath string, consolidated *consolidate.Result) error {
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	inserted, err := store.InsertRecords(consolidated.Records)
	if err != nil {
		return err
	}
	fmt.Printf("Ledger updated: %d new record(s) in %s\n", inserted, dbPath)

	return nil
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processInputDir, "input", "i", "", "Input folder containing timesheet files (default from config: input_files)")
	processCmd.Flags().StringVarP(&processOutputDir, "output", "o", "", "Output folder for results (default from config: output)")
	processCmd.Flags().StringVar(&processPayrollFile, "payroll-file", "", "Payroll workbook to append the Timesheet Data sheet to")
	processCmd.Flags().StringVar(&processDBPath, "db", "", "Path to local SQLite ledger database")
	processCmd.Flags().StringVar(&processFilter, "filter", "", "Filename substring filter for this run (case-insensitive)")
	processCmd.Flags().BoolVar(&processSkipUpdate, "skip-workbook-update", false, "Do not touch the payroll workbook")
}
