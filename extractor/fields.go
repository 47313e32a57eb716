package extractor

import "regexp"

// Field identifies a semantically-labeled timesheet field. Grid and text
// extraction both dispatch on these constants rather than on raw label
// strings.
type Field int

const (
	FieldName Field = iota
	FieldTitle
	FieldPeriod
	FieldProjectManager
	FieldFirm
	FieldTotalHours
)

// Label returns the canonical grid label for the field. Source sheets
// sometimes carry a trailing space after the label; cells are trimmed
// before comparison, which makes the two variants equivalent.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldTitle:
		return "Title"
	case FieldPeriod:
		return "Period"
	case FieldProjectManager:
		return "Project Manager"
	case FieldFirm:
		return "Firm"
	case FieldTotalHours:
		return "Total Hours"
	default:
		return ""
	}
}

// gridFieldByLabel maps a trimmed cell value to its field. Matching is
// case-sensitive.
var gridFieldByLabel = map[string]Field{
	FieldName.Label():           FieldName,
	FieldTitle.Label():          FieldTitle,
	FieldPeriod.Label():         FieldPeriod,
	FieldProjectManager.Label(): FieldProjectManager,
	FieldFirm.Label():           FieldFirm,
	FieldTotalHours.Label():     FieldTotalHours,
}

// Text extraction pattern tables. Name, period, and total use first-match
// semantics (line order, then pattern order); daily hours and task
// breakdown are exhaustive across all lines. The asymmetry is deliberate
// and mirrors the shape of the source timesheets.
var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		regexp.MustCompile(`Name:\s*([A-Z][a-z]+\s+[A-Z][a-z]+)`),
		regexp.MustCompile(`Employee:\s*([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	}

	periodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+\s*-\s*\d+\s+\w+\s+\d{4})`),
		regexp.MustCompile(`Week\s+of\s+([^,\n]+)`),
		regexp.MustCompile(`(\w+\s+\d+,\s+\d{4})`),
	}

	dailyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(Sun|Mon|Tue|Wed|Thu|Fri|Sat)\s+(\d+):\s*(\d+)\s*Hrs?`),
		regexp.MustCompile(`(Sunday|Monday|Tuesday|Wednesday|Thursday|Friday|Saturday)\s+(\d+):\s*(\d+)\s*Hrs?`),
		regexp.MustCompile(`(\d+/\d+):\s*(\d+)\s*Hrs?`),
	}

	totalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total:\s*(\d+)\s*hrs?`),
		regexp.MustCompile(`(?i)(\d+)\s*hrs?\s*Total`),
		regexp.MustCompile(`(?i)Time\s+Sheet\s+breakdown.*?(\d+)\s*hrs?`),
		regexp.MustCompile(`(?i)(\d+)\s*hrs?\s*breakdown`),
	}

	taskPattern = regexp.MustCompile(`([A-Za-z\s]+):\s*Total:\s*(\d+)\s*hours?`)
)

// Defaults documented for fields that match nothing.
const (
	DefaultEmployeeName = "Unknown"
	DefaultWeekPeriod   = "Unknown Week"
)
