package timesheet

import "strings"

// Source types stamped on every record.
const (
	SourceTabular = "tabular"
	SourceImage   = "image"
)

// Record is the canonical per-employee timesheet unit produced by the
// extractors and consumed by the consolidator and reporters.
type Record struct {
	EmployeeName   string
	TotalHours     float64
	Period         string
	Title          string
	ProjectManager string
	Client         string
	Firm           string
	SourceType     string
	SourceFile     string
	// ExtractedAt uses the fixed-width "2006-01-02 15:04:05" layout, so
	// lexicographic comparison matches chronological order.
	ExtractedAt string
}

// Key returns the consolidation identity: the trimmed employee name.
// Matching is exact; no fuzzy comparison happens anywhere.
func (r Record) Key() string {
	return strings.TrimSpace(r.EmployeeName)
}

// Valid reports whether the record carries an employee name. Records
// without one are discarded at extraction time and never propagated.
func (r Record) Valid() bool {
	return r.Key() != ""
}

// NewerThan reports whether r was extracted strictly after other.
func (r Record) NewerThan(other Record) bool {
	return r.ExtractedAt > other.ExtractedAt
}
