package tablediff

import (
	"fmt"
	"sort"
)

// Table is an ordered sequence of rows of cells with a synchronized column
// view. All rows have the same length. The first row conventionally carries
// the header names when the table is read through header-based views.
//
// Tables are persistent values under transformation: every mapping
// operation returns a new Table and leaves the receiver untouched.
type Table struct {
	cells [][]*Cell

	colMappers    []columnMapper
	headerMappers []headerMapper
}

// From builds a Table from rows of scalar values (string, bool, number,
// or nil). All rows must have the same length; ragged rows and non-scalar
// values fail with MalformedInputError.
func From(rows [][]any) (*Table, error) {
	t := &Table{}
	for r, row := range rows {
		if r > 0 && len(row) != len(rows[0]) {
			return nil, &MalformedInputError{
				Reason: fmt.Sprintf("row %d has %d cells, expected %d", r, len(row), len(rows[0])),
			}
		}
		cells := make([]*Cell, len(row))
		for c, v := range row {
			if !scalar(v) {
				return nil, &MalformedInputError{
					Reason: fmt.Sprintf("cell (%d,%d) holds %T, expected a scalar", r, c, v),
				}
			}
			cells[c] = NewCell(v, r, c)
		}
		t.cells = append(t.cells, cells)
	}
	return t, nil
}

// scalar reports whether v is a valid cell value. Restricting cells to
// scalars keeps equality comparisons safe during alignment.
func scalar(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// FromStrings builds a Table from rows of strings.
func FromStrings(rows [][]string) (*Table, error) {
	converted := make([][]any, len(rows))
	for r, row := range rows {
		converted[r] = make([]any, len(row))
		for c, v := range row {
			converted[r][c] = v
		}
	}
	return From(converted)
}

// FromMaps builds a Table from a sequence of uniform maps, synthesizing a
// header row from the first map's keys in sorted order. All maps must share
// the same key set; a divergent map fails with MalformedInputError.
func FromMaps(maps []map[string]any) (*Table, error) {
	if len(maps) == 0 {
		return &Table{}, nil
	}
	headers := make([]string, 0, len(maps[0]))
	for k := range maps[0] {
		headers = append(headers, k)
	}
	sort.Strings(headers)

	rows := make([][]any, 0, len(maps)+1)
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	rows = append(rows, headerRow)

	for i, m := range maps {
		if len(m) != len(headers) {
			return nil, &MalformedInputError{
				Reason: fmt.Sprintf("map %d has %d keys, expected %d", i, len(m), len(headers)),
			}
		}
		row := make([]any, len(headers))
		for c, h := range headers {
			v, ok := m[h]
			if !ok {
				return nil, &MalformedInputError{
					Reason: fmt.Sprintf("map %d is missing key %q", i, h),
				}
			}
			row[c] = v
		}
		rows = append(rows, row)
	}
	return From(rows)
}

// Rows returns the row-ordered view of the table's cells.
func (t *Table) Rows() [][]*Cell {
	return t.cells
}

// Columns returns the column-ordered view. It indexes the same cell
// instances as Rows: Columns()[c][r] and Rows()[r][c] are identical
// pointers.
func (t *Table) Columns() [][]*Cell {
	if len(t.cells) == 0 {
		return nil
	}
	cols := make([][]*Cell, len(t.cells[0]))
	for c := range cols {
		col := make([]*Cell, len(t.cells))
		for r := range t.cells {
			col[r] = t.cells[r][c]
		}
		cols[c] = col
	}
	return cols
}

// NumRows returns the number of rows, including any header row.
func (t *Table) NumRows() int { return len(t.cells) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Dup returns a deep copy of the table, including any attached mappers.
func (t *Table) Dup() *Table {
	return t.derive()
}

// derive clones the table for a copy-on-write transformation: fresh cells,
// fresh mapper slices, no shared mutable state with the receiver.
func (t *Table) derive() *Table {
	dup := &Table{
		cells:         make([][]*Cell, len(t.cells)),
		colMappers:    append([]columnMapper(nil), t.colMappers...),
		headerMappers: append([]headerMapper(nil), t.headerMappers...),
	}
	for r, row := range t.cells {
		cells := make([]*Cell, len(row))
		for c, cell := range row {
			cells[c] = cell.clone()
		}
		dup.cells[r] = cells
	}
	return dup
}
