package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamalsrini/PayrollTimecardAgent/config"
	"github.com/kamalsrini/PayrollTimecardAgent/storage"
	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

var (
	ledgerDBPath   string
	ledgerEmployee string
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "List consolidated records persisted by past pipeline runs",
	Long: `Print the consolidated records that "process" runs have appended to the
local SQLite ledger, oldest extraction first. The ledger is an audit
trail; the authoritative payroll outputs are the CSV and workbook files.`,
	Example: `
  # Show the full ledger
  payrolltimecard ledger

  # Show ledger rows for one employee
  payrolltimecard ledger --employee "John Smith"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		dbPath := cfg.Process.LedgerDB
		if ledgerDBPath != "" {
			dbPath = ledgerDBPath
		}

		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := listLedger(store, ledgerEmployee)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("Ledger is empty.")
			return nil
		}

		var total float64
		for _, record := range records {
			fmt.Printf("%s  %-30s %8.2f hours  %-8s %s\n",
				record.ExtractedAt,
				record.EmployeeName,
				record.TotalHours,
				record.SourceType,
				record.SourceFile,
			)
			total += record.TotalHours
		}
		fmt.Printf("Records: %d, Total hours: %g\n", len(records), total)

		return nil
	},
}

func listLedger(store *storage.SQLiteStore, employee string) ([]timesheet.Record, error) {
	if employee != "" {
		return store.ListRecordsByEmployee(employee)
	}
	return store.ListRecords()
}

func init() {
	rootCmd.AddCommand(ledgerCmd)

	ledgerCmd.Flags().StringVar(&ledgerDBPath, "db", "", "Path to local SQLite ledger database (default from config)")
	ledgerCmd.Flags().StringVar(&ledgerEmployee, "employee", "", "Only show records for this employee name")
}
