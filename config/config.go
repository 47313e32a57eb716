package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyProcessInputDir       = "process.input_dir"
	KeyProcessOutputDir      = "process.output_dir"
	KeyProcessPayrollFile    = "process.payroll_file"
	KeyProcessLedgerDB       = "process.ledger_db"
	KeyProcessFilenameFilter = "process.filename_filter"
	KeyExtractDir            = "extract.dir"
	KeyExtractFilenameFilter = "extract.filename_filter"
	KeyOCRLanguages          = "ocr.languages"
	KeyOCRPageSegMode        = "ocr.page_seg_mode"
	KeyOCRImageTitle         = "ocr.image_title"
	KeyGridHoursFallbackCol  = "grid.hours_fallback_column"
)

type Config struct {
	Process ProcessConfig `mapstructure:"process" validate:"required"`
	Extract ExtractConfig `mapstructure:"extract"`
	OCR     OCRConfig     `mapstructure:"ocr"`
	Grid    GridConfig    `mapstructure:"grid"`
}

// ProcessConfig drives the unified pipeline entry point. Its filename
// filter matches case-insensitively.
type ProcessConfig struct {
	InputDir       string `mapstructure:"input_dir" validate:"required"`
	OutputDir      string `mapstructure:"output_dir" validate:"required"`
	PayrollFile    string `mapstructure:"payroll_file" validate:"required"`
	LedgerDB       string `mapstructure:"ledger_db" validate:"required"`
	FilenameFilter string `mapstructure:"filename_filter" validate:"required"`
}

// ExtractConfig drives the standalone tabular entry point. Its filename
// filter matches case-sensitively; the two entry points historically use
// different filters and stay independently configurable.
type ExtractConfig struct {
	Dir            string `mapstructure:"dir" validate:"required"`
	FilenameFilter string `mapstructure:"filename_filter" validate:"required"`
}

type OCRConfig struct {
	Languages []string `mapstructure:"languages" validate:"min=1"`
	// PageSegMode is the Tesseract page segmentation mode (0-13).
	PageSegMode int `mapstructure:"page_seg_mode" validate:"gte=0,lte=13"`
	// ImageTitle is the placeholder title stamped on image-sourced
	// records, which carry no title of their own.
	ImageTitle string `mapstructure:"image_title"`
}

type GridConfig struct {
	// HoursFallbackColumn is the 1-based column read for "Total Hours"
	// when the label's adjacent cell is empty. A layout convention of the
	// source spreadsheets, not a general rule.
	HoursFallbackColumn int `mapstructure:"hours_fallback_column" validate:"gte=1"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# payrolltimecard configuration
process:
  input_dir: "input_files"
  output_dir: "output"
  payroll_file: "3 - Payroll Totals.xls"
  ledger_db: "./payroll.db"
  filename_filter: "time"

extract:
  dir: "."
  filename_filter: "Time Sheet"

ocr:
  languages: ["eng"]
  page_seg_mode: 6
  image_title: "Credentialing Specialist"

grid:
  hours_fallback_column: 4
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyProcessInputDir, "input_files")
	v.SetDefault(KeyProcessOutputDir, "output")
	v.SetDefault(KeyProcessPayrollFile, "3 - Payroll Totals.xls")
	v.SetDefault(KeyProcessLedgerDB, "./payroll.db")
	v.SetDefault(KeyProcessFilenameFilter, "time")
	v.SetDefault(KeyExtractDir, ".")
	v.SetDefault(KeyExtractFilenameFilter, "Time Sheet")
	v.SetDefault(KeyOCRLanguages, []string{"eng"})
	v.SetDefault(KeyOCRPageSegMode, 6)
	v.SetDefault(KeyOCRImageTitle, "Credentialing Specialist")
	v.SetDefault(KeyGridHoursFallbackCol, 4)
}
