package extractor

import (
	"strconv"
	"strings"
)

// GridFields holds the raw field values located in one sheet.
type GridFields struct {
	Name           string
	Title          string
	Period         string
	ProjectManager string
	Firm           string
	TotalHours     float64
}

// GridLocator scans a sheet grid for known field labels and reads each
// label's adjacent cell as the field value.
type GridLocator struct {
	// HoursFallbackColumn is the 1-based column read for "Total Hours"
	// when the cell right of the label is empty.
	HoursFallbackColumn int
}

// Locate scans the grid in row-major order. Whenever a cell's trimmed
// value equals a known label (case-sensitive), the cell one column to the
// right is read as that field's value; later matches overwrite earlier
// ones. The second return value reports whether the sheet yields a
// record: it requires a non-empty name AND hours > 0, so a zero-hour
// sheet is treated as "not a timesheet" on this path.
func (l *GridLocator) Locate(grid SheetGrid) (GridFields, bool) {
	var fields GridFields

	for _, row := range grid.Rows {
		for col, cell := range row {
			value := strings.TrimSpace(cell)
			if value == "" {
				continue
			}

			field, ok := gridFieldByLabel[value]
			if !ok {
				continue
			}

			adjacent := cellAt(row, col+1)
			switch field {
			case FieldName:
				if trimmed := strings.TrimSpace(adjacent); trimmed != "" {
					fields.Name = trimmed
				}
			case FieldTitle:
				if trimmed := strings.TrimSpace(adjacent); trimmed != "" {
					fields.Title = trimmed
				}
			case FieldPeriod:
				if trimmed := strings.TrimSpace(adjacent); trimmed != "" {
					fields.Period = trimmed
				}
			case FieldProjectManager:
				if trimmed := strings.TrimSpace(adjacent); trimmed != "" {
					fields.ProjectManager = trimmed
				}
			case FieldFirm:
				if trimmed := strings.TrimSpace(adjacent); trimmed != "" {
					fields.Firm = trimmed
				}
			case FieldTotalHours:
				fields.TotalHours = l.locateHours(row, col)
			}
		}
	}

	return fields, fields.Name != "" && fields.TotalHours > 0
}

// locateHours reads the hours value for a "Total Hours" label at the
// given column. The adjacent cell wins when present; an empty adjacent
// cell falls back to the configured fixed column of the same row.
func (l *GridLocator) locateHours(row []string, labelCol int) float64 {
	adjacent := strings.TrimSpace(cellAt(row, labelCol+1))
	if adjacent != "" {
		return parseHours(adjacent)
	}

	fallback := strings.TrimSpace(cellAt(row, l.HoursFallbackColumn-1))
	if fallback != "" {
		return parseHours(fallback)
	}

	return 0
}

// parseHours coerces a cell value to hours. Anything unparseable yields
// 0 rather than an error.
func parseHours(value string) float64 {
	hours, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return hours
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
