package extractor

import (
	"path/filepath"
	"time"

	"github.com/kamalsrini/PayrollTimecardAgent/internal/timeutil"
	"github.com/kamalsrini/PayrollTimecardAgent/timesheet"
)

// Normalizer turns raw extractor output into canonical records. The
// field mapping is fixed per source type.
type Normalizer struct {
	// ImageTitle is the placeholder title for image-sourced records,
	// which carry no title of their own.
	ImageTitle string
	// Now supplies the extraction timestamp; nil means time.Now.
	Now func() time.Time
}

func (n *Normalizer) stamp() string {
	now := n.Now
	if now == nil {
		now = time.Now
	}
	return timeutil.Stamp(now())
}

// FromGrid builds a tabular-sourced record from located grid fields.
func (n *Normalizer) FromGrid(fields GridFields, sourcePath string) timesheet.Record {
	return timesheet.Record{
		EmployeeName:   fields.Name,
		TotalHours:     fields.TotalHours,
		Period:         fields.Period,
		Title:          fields.Title,
		ProjectManager: fields.ProjectManager,
		Firm:           fields.Firm,
		SourceType:     timesheet.SourceTabular,
		SourceFile:     filepath.Base(sourcePath),
		ExtractedAt:    n.stamp(),
	}
}

// FromText builds an image-sourced record from parsed OCR fields. Image
// timesheets carry no title, project manager, client, or firm; the title
// gets the configured placeholder and the rest stay empty.
func (n *Normalizer) FromText(sheet TextTimesheet, sourcePath string) timesheet.Record {
	return timesheet.Record{
		EmployeeName: sheet.EmployeeName,
		TotalHours:   float64(sheet.TotalHours),
		Period:       sheet.WeekPeriod,
		Title:        n.ImageTitle,
		SourceType:   timesheet.SourceImage,
		SourceFile:   filepath.Base(sourcePath),
		ExtractedAt:  n.stamp(),
	}
}
