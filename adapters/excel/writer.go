package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteSheets serializes the given sheets into a single xlsx workbook and
// returns its bytes. Sheet order in the workbook follows the slice order.
func WriteSheets(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	// excelize starts every workbook with "Sheet1"; rename it to the first
	// requested sheet instead of leaving an empty sheet behind.
	if err := f.SetSheetName("Sheet1", sheets[0].Name); err != nil {
		return nil, fmt.Errorf("failed to name sheet %q: %w", sheets[0].Name, err)
	}
	for _, sheet := range sheets[1:] {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
		}
	}

	for _, sheet := range sheets {
		if err := writeSheet(f, sheet); err != nil {
			return nil, err
		}
	}

	if idx, err := f.GetSheetIndex(sheets[0].Name); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	// Header row
	for i, h := range sheet.Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet.Name, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r, row := range sheet.Rows {
		rowIdx := r + 2
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet.Name, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}
