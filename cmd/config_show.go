package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kamalsrini/PayrollTimecardAgent/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  payrolltimecard config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; showing defaults.")
		}

		fmt.Println("Configuration:")
		fmt.Printf("process.input_dir: %s\n", cfg.Process.InputDir)
		fmt.Printf("process.output_dir: %s\n", cfg.Process.OutputDir)
		fmt.Printf("process.payroll_file: %s\n", cfg.Process.PayrollFile)
		fmt.Printf("process.ledger_db: %s\n", cfg.Process.LedgerDB)
		fmt.Printf("process.filename_filter: %s\n", cfg.Process.FilenameFilter)
		fmt.Printf("extract.dir: %s\n", cfg.Extract.Dir)
		fmt.Printf("extract.filename_filter: %s\n", cfg.Extract.FilenameFilter)
		fmt.Printf("ocr.languages: %s\n", strings.Join(cfg.OCR.Languages, ", "))
		fmt.Printf("ocr.page_seg_mode: %d\n", cfg.OCR.PageSegMode)
		fmt.Printf("ocr.image_title: %s\n", cfg.OCR.ImageTitle)
		fmt.Printf("grid.hours_fallback_column: %d\n", cfg.Grid.HoursFallbackColumn)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
