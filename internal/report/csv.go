package report

import (
	"encoding/csv"
	"io"

	"github.com/jdmartel/finance-tracker/internal/dto"
)

// WriteCSV streams a rendered report as CSV: header row, then one
// record per row.
func WriteCSV(w io.Writer, r dto.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Columns); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
