package diagram

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes parallel diagram columns to a spreadsheet, one header
// per column followed by the sampled values.
func ExportXLSX(sheet string, headers []string, columns [][]float64, filename string) error {
	if len(headers) != len(columns) {
		return fmt.Errorf("diagram: %d headers for %d columns", len(headers), len(columns))
	}

	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return err
		}
	}

	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		for r, v := range columns[c] {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(filename)
}
