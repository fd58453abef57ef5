package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jdmartel/finance-tracker/internal/dto"
)

// WriteXLSX renders one or more reports as an xlsx workbook, one sheet
// per report, and streams it to w.
func WriteXLSX(w io.Writer, reports ...dto.Report) error {
	if len(reports) == 0 {
		return fmt.Errorf("no report sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, r := range reports {
		sheet := r.Title
		if i == 0 {
			// excelize creates "Sheet1" by default; rename it for the first report.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}

		for col, header := range r.Columns {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, header); err != nil {
				return err
			}
		}
		for rowIdx, row := range r.Rows {
			for col, value := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return err
				}
			}
		}
	}

	return f.Write(w)
}
