package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindTabularTimesheets_FiltersCaseSensitively(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{
		"Jane Time Sheet.xlsx",
		"john time sheet.xlsx",
		"Adam Time Sheet.xls",
		"Time Sheet scan.png",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}

	files, err := findTabularTimesheets(dir, "Time Sheet")
	if err != nil {
		t.Fatalf("find timesheets: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "Adam Time Sheet.xls" || filepath.Base(files[1]) != "Jane Time Sheet.xlsx" {
		t.Fatalf("unexpected files: %v", files)
	}
}

func TestFindTabularTimesheets_MissingDirectoryFails(t *testing.T) {
	t.Parallel()

	if _, err := findTabularTimesheets(filepath.Join(t.TempDir(), "missing"), "Time Sheet"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
