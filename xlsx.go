package tablediff

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// FromWorkbook reads one sheet of an xlsx workbook into a Table. Cell
// values arrive as display strings. excelize trims trailing empty cells
// per row, so rows are padded back out to the widest row to keep the table
// rectangular.
func FromWorkbook(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = make([]string, width)
		copy(padded[i], row)
	}
	return FromStrings(padded)
}
