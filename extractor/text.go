package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// TextTimesheet holds the fields parsed from one OCR text pass. All
// fields have documented defaults; parsing never fails on malformed or
// unexpected text.
type TextTimesheet struct {
	EmployeeName  string
	WeekPeriod    string
	DailyHours    map[string]int
	TotalHours    int
	TaskBreakdown map[string]int
}

// ParseText extracts timesheet fields from free-form OCR output.
//
// Name, week period, and total hours use first-match semantics: lines in
// original order, then patterns in table order, first hit wins. Daily
// hours and task breakdown are exhaustive: every non-overlapping match
// across every line contributes an entry, with later duplicate keys
// overwriting earlier ones.
func ParseText(text string) TextTimesheet {
	lines := strings.Split(text, "\n")

	return TextTimesheet{
		EmployeeName:  firstMatch(lines, namePatterns, DefaultEmployeeName),
		WeekPeriod:    firstMatch(lines, periodPatterns, DefaultWeekPeriod),
		DailyHours:    extractDailyHours(lines),
		TotalHours:    extractTotalHours(lines),
		TaskBreakdown: extractTaskBreakdown(lines),
	}
}

// DailySum returns the sum of all extracted daily hours.
func (t TextTimesheet) DailySum() int {
	sum := 0
	for _, hours := range t.DailyHours {
		sum += hours
	}
	return sum
}

// TotalsMatch reports whether the declared total agrees with the sum of
// the daily hours. It is a verification signal for callers, never an
// enforced invariant.
func (t TextTimesheet) TotalsMatch() bool {
	return t.DailySum() == t.TotalHours
}

func firstMatch(lines []string, patterns []*regexp.Regexp, fallback string) string {
	for _, line := range lines {
		for _, pattern := range patterns {
			if match := pattern.FindStringSubmatch(line); match != nil {
				return strings.TrimSpace(match[1])
			}
		}
	}
	return fallback
}

func extractDailyHours(lines []string) map[string]int {
	daily := make(map[string]int)

	for _, line := range lines {
		for _, pattern := range dailyPatterns {
			for _, match := range pattern.FindAllStringSubmatch(line, -1) {
				switch len(match) {
				case 4:
					// Weekday + day-of-month shapes: "Mon 6: 8 Hrs".
					hours, err := strconv.Atoi(match[3])
					if err != nil {
						continue
					}
					daily[match[1]+" "+match[2]] = hours
				case 3:
					// Slash-date shape: "10/6: 8 Hrs".
					hours, err := strconv.Atoi(match[2])
					if err != nil {
						continue
					}
					daily[match[1]] = hours
				}
			}
		}
	}

	return daily
}

func extractTotalHours(lines []string) int {
	for _, line := range lines {
		for _, pattern := range totalPatterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			hours, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			return hours
		}
	}
	return 0
}

func extractTaskBreakdown(lines []string) map[string]int {
	tasks := make(map[string]int)

	for _, line := range lines {
		match := taskPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		hours, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		tasks[strings.TrimSpace(match[1])] = hours
	}

	return tasks
}
