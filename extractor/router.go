package extractor

import (
	"path/filepath"
	"strings"
)

// SourceKind classifies an input file by extension.
type SourceKind int

const (
	SourceOther SourceKind = iota
	SourceTabular
	SourceImage
)

var tabularExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
}

// ClassifyExtension routes a file into tabular, image, or other by its
// extension alone.
func ClassifyExtension(path string) SourceKind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case tabularExtensions[ext]:
		return SourceTabular
	case imageExtensions[ext]:
		return SourceImage
	default:
		return SourceOther
	}
}

// MatchesFilter reports whether the file's base name contains the filter
// substring. The unified pipeline matches case-insensitively; the
// standalone tabular entry point matches case-sensitively. The two entry
// points keep distinct filters on purpose.
func MatchesFilter(path, filter string, caseInsensitive bool) bool {
	name := filepath.Base(path)
	if caseInsensitive {
		return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
	}
	return strings.Contains(name, filter)
}
