package timeutil

import "time"

// StampLayout is the extraction timestamp layout. It is fixed width, so
// string comparison of two stamps is also chronological comparison.
const StampLayout = "2006-01-02 15:04:05"

// FileStampLayout is the compact layout embedded in generated file names
// (reports, workbook backups).
const FileStampLayout = "20060102_150405"

func Stamp(value time.Time) string {
	return value.Format(StampLayout)
}

func FileStamp(value time.Time) string {
	return value.Format(FileStampLayout)
}
