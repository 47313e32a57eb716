package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kamalsrini/PayrollTimecardAgent/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "payrolltimecard",
	Short: "Extract and consolidate employee timesheet data from spreadsheets and scanned images.",
	Long: `
**********************************************
*          PAYROLL TIMECARD AGENT            *
**********************************************

This CLI extracts employee timesheet records from spreadsheet files
(.xlsx, .xlsm, .xls) and scanned/photographed timesheets (.png, .jpg,
.jpeg, .bmp, .tiff), consolidates them into one record per employee, and
writes the consolidated ledger to CSV, a processing report, and a new
sheet in the payroll workbook.

Image files are read through Tesseract OCR. When Tesseract is not
installed, image files are skipped with a warning and spreadsheet
processing continues unaffected.
`,
	Example: `
  # Create configuration file
  payrolltimecard config create

  # Run the full pipeline over ./input_files
  payrolltimecard process

  # Run the pipeline with explicit folders
  payrolltimecard process --input ./timesheets --output ./results

  # Standalone tabular extraction ("Time Sheet" files in current directory)
  payrolltimecard extract

  # Show consolidated records persisted by past runs
  payrolltimecard ledger
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.payrolltimecard.yaml, then ./.payrolltimecard.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".payrolltimecard" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".payrolltimecard")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: payrolltimecard config create")
	}
}
