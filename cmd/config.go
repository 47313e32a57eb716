package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage payrolltimecard configuration file values.",
	Long: `Create and display the payrolltimecard configuration file.

The configuration stores:
- process.* (input/output folders, payroll workbook, ledger db, filename filter)
- extract.* (scan directory and the standalone entry point's filename filter)
- ocr.* (Tesseract languages, page segmentation mode, image record title)
- grid.hours_fallback_column (the fixed column read when the "Total Hours"
  label's adjacent cell is empty)`,
	Example: `
  # Create default config in $HOME/.payrolltimecard.yaml
  payrolltimecard config create

  # Show active config and source file
  payrolltimecard config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
