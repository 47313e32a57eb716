// Package consolidate merges all per-file timesheet records into one
// trusted record per employee.
package consolidate

import (
	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

// Result reports the outcome of one consolidation pass.
type Result struct {
	RecordsIn int
	Employees int
	Records   []timesheet.Record
}

// Run groups records by trimmed employee name (exact match, no fuzzy
// comparison) and keeps exactly one record per name: the one with the
// greatest extraction timestamp. Ties keep the record seen first. Output
// order is the first-seen order of each distinct name, so identical
// input yields identical output.
func Run(records []timesheet.Record) *Result {
	result := &Result{RecordsIn: len(records)}

	index := make(map[string]int, len(records))
	kept := make([]timesheet.Record, 0, len(records))

	for _, record := range records {
		if !record.Valid() {
			continue
		}

		key := record.Key()
		at, seen := index[key]
		if !seen {
			index[key] = len(kept)
			kept = append(kept, record)
			continue
		}
		if record.NewerThan(kept[at]) {
			kept[at] = record
		}
	}

	result.Records = kept
	result.Employees = len(kept)
	return result
}

// SumByEmployee accumulates total hours per trimmed employee name. The
// standalone tabular entry point reports summed hours rather than the
// recency rule; the two consolidation modes are intentionally distinct.
func SumByEmployee(records []timesheet.Record) (map[string]float64, []string) {
	sums := make(map[string]float64, len(records))
	order := make([]string, 0, len(records))

	for _, record := range records {
		if !record.Valid() {
			continue
		}
		key := record.Key()
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += record.TotalHours
	}

	return sums, order
}
