package extractor

import "testing"

func TestGridLocator_LocatesLabeledFields(t *testing.T) {
	t.Parallel()

	grid := SheetGrid{
		Name: "Sheet1",
		Rows: [][]string{
			{"Name", "Jane Doe"},
			{"Title", "Credentialing Specialist"},
			{"Period", "6 - 10 October 2025"},
			{"Project Manager", "Sam Lee"},
			{"Firm", "Acme Staffing"},
			{"Total Hours", "32.5"},
		},
	}

	locator := &GridLocator{HoursFallbackColumn: 4}
	fields, ok := locator.Locate(grid)
	if !ok {
		t.Fatalf("expected a record, got none: %+v", fields)
	}

	if fields.Name != "Jane Doe" {
		t.Fatalf("unexpected name: %q", fields.Name)
	}
	if fields.Title != "Credentialing Specialist" {
		t.Fatalf("unexpected title: %q", fields.Title)
	}
	if fields.Period != "6 - 10 October 2025" {
		t.Fatalf("unexpected period: %q", fields.Period)
	}
	if fields.ProjectManager != "Sam Lee" {
		t.Fatalf("unexpected project manager: %q", fields.ProjectManager)
	}
	if fields.Firm != "Acme Staffing" {
		t.Fatalf("unexpected firm: %q", fields.Firm)
	}
	if fields.TotalHours != 32.5 {
		t.Fatalf("unexpected hours: %g", fields.TotalHours)
	}
}

func TestGridLocator_TrailingSpaceLabelStillMatches(t *testing.T) {
	t.Parallel()

	grid := SheetGrid{
		Name: "Sheet1",
		Rows: [][]string{
			{"Name ", "Jane Doe"},
			{"Total Hours ", "40"},
		},
	}

	locator := &GridLocator{HoursFallbackColumn: 4}
	fields, ok := locator.Locate(grid)
	if !ok {
		t.Fatalf("expected a record, got none")
	}
	if fields.Name != "Jane Doe" || fields.TotalHours != 40 {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestGridLocator_HoursFallbackColumn(t *testing.T) {
	t.Parallel()

	grid := SheetGrid{
		Name: "Sheet1",
		Rows: [][]string{
			{"Name", "Jane Doe"},
			{"Total Hours", "", "", "40"},
		},
	}

	locator := &GridLocator{HoursFallbackColumn: 4}
	fields, ok := locator.Locate(grid)
	if !ok {
		t.Fatalf("expected a record, got none")
	}
	if fields.TotalHours != 40 {
		t.Fatalf("expected fallback column hours 40, got %g", fields.TotalHours)
	}
}

func TestGridLocator_AdjacentCellBeatsFallbackColumn(t *testing.T) {
	t.Parallel()

	grid := SheetGrid{
		Name: "Sheet1",
		Rows: [][]string{
			{"Name", "Jane Doe"},
			{"Total Hours", "35", "", "40"},
		},
	}

	locator := &GridLocator{HoursFallbackColumn: 4}
	fields, _ := locator.Locate(grid)
	if fields.TotalHours != 35 {
		t.Fatalf("expected adjacent cell hours 35, got %g", fields.TotalHours)
	}
}

func TestGridLocator_UnparseableHoursYieldZero(t *testing.T) {
	t.Parallel()

	grid := SheetGrid{
		Name: "Sheet1",
		Rows: [][]string{
			{"Name", "Jane Doe"},
			{"Total Hours", "forty"},
		},
	}

	locator := &GridLocator{HoursFallbackColumn: 4}
	fields, ok := locator.Locate(grid)
	if ok {
		t.Fatalf("expected no record for unparseable hours, got %+v", fields)
	}
	if fields.TotalHours != 0 {
		t.Fatalf("expected 0 hours, got %g", fields.TotalHours)
	}
}

func TestGridLocator_ZeroHoursSheetYieldsNoRecord(t *testing.T) {
	t.Parallel()

	grid := SheetGrid{
		Name: "Summary",
		Rows: [][]string{
			{"Name", "Jane Doe"},
			{"Total Hours", "0"},
		},
	}

	locator := &GridLocator{HoursFallbackColumn: 4}
	if _, ok := locator.Locate(grid); ok {
		t.Fatalf("expected zero-hour sheet to yield no record")
	}
}

func TestGridLocator_MissingNameYieldsNoRecord(t *testing.T) {
	t.Parallel()

	grid := SheetGrid{
		Name: "Sheet1",
		Rows: [][]string{
			{"Total Hours", "40"},
		},
	}

	locator := &GridLocator{HoursFallbackColumn: 4}
	if _, ok := locator.Locate(grid); ok {
		t.Fatalf("expected nameless sheet to yield no record")
	}
}

func TestGridLocator_LabelAtRowEndReadsEmptyAdjacent(t *testing.T) {
	t.Parallel()

	grid := SheetGrid{
		Name: "Sheet1",
		Rows: [][]string{
			{"", "Name"},
			{"Total Hours", "40"},
		},
	}

	locator := &GridLocator{HoursFallbackColumn: 4}
	fields, ok := locator.Locate(grid)
	if ok {
		t.Fatalf("expected no record when the name label has no adjacent cell")
	}
	if fields.Name != "" {
		t.Fatalf("expected empty name, got %q", fields.Name)
	}
}
