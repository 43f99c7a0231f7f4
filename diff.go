package tablediff

import "fmt"

// DiffOptions selects which divergence categories make a comparison fail.
// Cell-level mismatches between matched rows always fail; the flags govern
// structural differences only.
type DiffOptions struct {
	MissingRow   bool // source rows absent from target
	SurplusRow   bool // target rows absent from source
	MissingCol   bool // source columns absent from target
	SurplusCol   bool // target columns absent from source
	MisplacedCol bool // shared columns in a different relative order
}

// DefaultDiffOptions returns the default comparison configuration:
// missing rows, surplus rows, and missing columns fail; surplus and
// misplaced columns are tolerated.
func DefaultDiffOptions() *DiffOptions {
	return &DiffOptions{MissingRow: true, SurplusRow: true, MissingCol: true}
}

// alignedCol is one column of the merged output. src and tgt are the column
// indices in the two input tables, -1 when the column is absent on that side.
type alignedCol struct {
	name string
	src  int
	tgt  int
}

// Diff compares the table against other and returns the annotated merged
// table. other may be a *Table, [][]any, [][]string, or []map[string]any;
// non-Table values are coerced through the usual construction path. When at
// least one enabled divergence category is present the annotated table is
// also wrapped in a *DifferentError. Comparing a table against an identical
// table never fails. A nil opts means DefaultDiffOptions.
func (t *Table) Diff(other any, opts *DiffOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultDiffOptions()
	}
	target, err := ensureTable(other)
	if err != nil {
		return nil, err
	}

	srcHeaders, srcRows, err := t.materialize()
	if err != nil {
		return nil, err
	}
	tgtHeaders, tgtRows, err := target.materialize()
	if err != nil {
		return nil, err
	}

	cols, missingCol, surplusCol, misplacedCol := alignColumns(srcHeaders, tgtHeaders)

	eq := func(i, j int) bool {
		return rowsAlign(srcRows[i], tgtRows[j], cols)
	}
	script := editScript(len(srcRows), len(tgtRows), eq)

	lastMatch := -1
	for k, e := range script {
		if e.op == opMatch {
			lastMatch = k
		}
	}

	var (
		out          [][]*Cell
		removedRow   bool
		surplusFails bool
		cellMismatch bool
	)
	if len(cols) > 0 {
		out = append(out, mergedHeaderRow(cols))
	}
	for k, e := range script {
		switch e.op {
		case opMatch:
			src, tgt := srcRows[e.src], tgtRows[e.tgt]
			if rowsMismatch(src, tgt, cols) {
				cellMismatch = true
				out = append(out,
					mismatchRow(src, tgt, cols, StatusRemoved),
					mismatchRow(src, tgt, cols, StatusInserted))
			} else {
				out = append(out, matchedRow(src, tgt, cols))
			}
		case opDelete:
			removedRow = true
			out = append(out, sourceRow(srcRows[e.src], cols))
		case opInsert:
			trailing := k > lastMatch
			if trailing && !opts.SurplusRow {
				continue
			}
			if opts.SurplusRow || !trailing {
				surplusFails = true
			}
			out = append(out, targetRow(tgtRows[e.tgt], cols))
		}
	}

	annotated := newAnnotated(out)
	failed := cellMismatch || surplusFails ||
		removedRow && opts.MissingRow ||
		missingCol && opts.MissingCol ||
		surplusCol && opts.SurplusCol ||
		misplacedCol && opts.MisplacedCol
	if failed {
		return annotated, &DifferentError{Table: annotated}
	}
	return annotated, nil
}

// ensureTable coerces the second diff argument into a Table.
func ensureTable(other any) (*Table, error) {
	switch v := other.(type) {
	case *Table:
		return v, nil
	case [][]any:
		return From(v)
	case [][]string:
		return FromStrings(v)
	case []map[string]any:
		return FromMaps(v)
	default:
		return nil, &MalformedInputError{Reason: fmt.Sprintf("cannot diff against %T", other)}
	}
}

// alignColumns merges the two header rows. Source column order is
// preserved; duplicate names are matched positionally among same-named
// occurrences; surplus target columns are appended at the end. misplaced
// reports shared columns whose relative order differs between the tables
// (drift caused only by missing or surplus columns does not count).
func alignColumns(src, tgt []string) (cols []alignedCol, missing, surplus, misplaced bool) {
	consumed := make([]bool, len(tgt))
	prevTgt := -1
	for si, name := range src {
		ti := -1
		for j, other := range tgt {
			if !consumed[j] && other == name {
				ti = j
				break
			}
		}
		if ti == -1 {
			missing = true
		} else {
			consumed[ti] = true
			if ti < prevTgt {
				misplaced = true
			}
			prevTgt = ti
		}
		cols = append(cols, alignedCol{name: name, src: si, tgt: ti})
	}
	for j, name := range tgt {
		if !consumed[j] {
			surplus = true
			cols = append(cols, alignedCol{name: name, src: -1, tgt: j})
		}
	}
	return cols, missing, surplus, misplaced
}

// rowsAlign reports whether a source row and a target row are equal enough
// to align in place: every shared-column cell pair must be equal either
// directly or by printed form.
func rowsAlign(src, tgt []any, cols []alignedCol) bool {
	for _, col := range cols {
		if col.src < 0 || col.tgt < 0 {
			continue
		}
		if equal, _ := cellEqual(src[col.src], tgt[col.tgt]); !equal {
			return false
		}
	}
	return true
}

// rowsMismatch reports whether an aligned row pair differs by type anywhere.
func rowsMismatch(src, tgt []any, cols []alignedCol) bool {
	for _, col := range cols {
		if col.src < 0 || col.tgt < 0 {
			continue
		}
		if _, mismatch := cellEqual(src[col.src], tgt[col.tgt]); mismatch {
			return true
		}
	}
	return false
}

// mergedHeaderRow builds the merged header row: shared headers unchanged, missing
// ones removed, surplus ones inserted.
func mergedHeaderRow(cols []alignedCol) []*Cell {
	row := make([]*Cell, len(cols))
	for c, col := range cols {
		cell := NewCell(col.name, 0, c)
		switch {
		case col.tgt < 0:
			cell.Status = StatusRemoved
		case col.src < 0:
			cell.Status = StatusInserted
		}
		row[c] = cell
	}
	return row
}

// matchedRow builds the single output row for an aligned, equal row pair.
// Missing-column cells keep the source value and are marked removed;
// surplus-column cells take the target value and are marked inserted.
func matchedRow(src, tgt []any, cols []alignedCol) []*Cell {
	row := make([]*Cell, len(cols))
	for c, col := range cols {
		switch {
		case col.tgt < 0:
			cell := NewCell(src[col.src], 0, c)
			cell.Status = StatusRemoved
			row[c] = cell
		case col.src < 0:
			cell := NewCell(tgt[col.tgt], 0, c)
			cell.Status = StatusInserted
			row[c] = cell
		default:
			row[c] = NewCell(src[col.src], 0, c)
		}
	}
	return row
}

// mismatchRow builds one half of the removed/inserted pair emitted for a
// row that aligned only by printed form. status selects which side's
// values it carries.
func mismatchRow(src, tgt []any, cols []alignedCol, status CellStatus) []*Cell {
	row := make([]*Cell, len(cols))
	for c, col := range cols {
		cell := NewCell(nil, 0, c)
		cell.Status = status
		if status == StatusRemoved {
			if col.src >= 0 {
				cell.Value = src[col.src]
			} else {
				cell.Blank = true
				cell.Status = StatusInserted
			}
		} else {
			if col.tgt >= 0 {
				cell.Value = tgt[col.tgt]
			} else {
				cell.Blank = true
				cell.Status = StatusRemoved
			}
		}
		if col.src >= 0 && col.tgt >= 0 {
			if _, mismatch := cellEqual(src[col.src], tgt[col.tgt]); mismatch {
				cell.TypeMismatch = true
			}
		}
		row[c] = cell
	}
	return row
}

// sourceRow builds a removed row from source values; surplus columns are
// blank on the source side.
func sourceRow(src []any, cols []alignedCol) []*Cell {
	row := make([]*Cell, len(cols))
	for c, col := range cols {
		cell := NewCell(nil, 0, c)
		if col.src >= 0 {
			cell.Value = src[col.src]
			cell.Status = StatusRemoved
		} else {
			cell.Blank = true
			cell.Status = StatusInserted
		}
		row[c] = cell
	}
	return row
}

// targetRow builds an inserted row from target values; missing columns are
// blank on the target side.
func targetRow(tgt []any, cols []alignedCol) []*Cell {
	row := make([]*Cell, len(cols))
	for c, col := range cols {
		cell := NewCell(nil, 0, c)
		if col.tgt >= 0 {
			cell.Value = tgt[col.tgt]
			cell.Status = StatusInserted
		} else {
			cell.Blank = true
			cell.Status = StatusRemoved
		}
		row[c] = cell
	}
	return row
}

// newAnnotated wraps already-annotated rows in a fresh Table, fixing up
// each cell's position so the dual-view identity invariant holds.
func newAnnotated(rows [][]*Cell) *Table {
	for r, row := range rows {
		for c, cell := range row {
			cell.Row, cell.Col = r, c
		}
	}
	return &Table{cells: rows}
}
