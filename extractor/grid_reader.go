package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// SheetGrid is the ephemeral view of one spreadsheet sheet: a named grid
// of cell values. It is consumed by one extraction pass and discarded.
type SheetGrid struct {
	Name string
	Rows [][]string
}

// ReadWorkbook loads every sheet of a spreadsheet as a grid. Modern
// formats go through excelize; legacy .xls files go through a BIFF
// reader, since excelize cannot open them. The workbook handle is closed
// on all paths.
func ReadWorkbook(path string) ([]SheetGrid, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xls" {
		return readLegacyWorkbook(path)
	}
	return readModernWorkbook(path)
}

func readModernWorkbook(path string) ([]SheetGrid, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetNames := file.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	grids := make([]SheetGrid, 0, len(sheetNames))
	for _, sheetName := range sheetNames {
		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
		}
		grids = append(grids, SheetGrid{Name: sheetName, Rows: rows})
	}

	return grids, nil
}

func readLegacyWorkbook(path string) ([]SheetGrid, error) {
	workbook, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open legacy xls file %s: %w", path, err)
	}

	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("legacy xls file has no sheets: %s", path)
	}

	grids := make([]SheetGrid, 0, workbook.NumSheets())
	for i := 0; i < workbook.NumSheets(); i++ {
		sheet := workbook.GetSheet(i)
		if sheet == nil {
			continue
		}

		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}

			// LastCol is exclusive in the BIFF reader.
			cells := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				if c < 0 || c >= len(cells) {
					continue
				}
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}

		grids = append(grids, SheetGrid{Name: sheet.Name, Rows: rows})
	}

	return grids, nil
}
