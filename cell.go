package tablediff

import (
	"fmt"
	"strconv"
)

// CellStatus classifies a cell in an annotated diff result.
type CellStatus int

const (
	StatusUnchanged CellStatus = iota
	StatusRemoved
	StatusInserted
)

// String returns a human-readable name for the CellStatus.
func (s CellStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "Unchanged"
	case StatusRemoved:
		return "Removed"
	case StatusInserted:
		return "Inserted"
	default:
		return "Unknown"
	}
}

// Cell holds a single scalar value at a (row, column) position. The same
// Cell instance is reachable through its table's row view and column view.
// After alignment a cell additionally carries its diff annotation.
type Cell struct {
	Value any // string, bool, number, or nil
	Row   int
	Col   int

	Status       CellStatus
	TypeMismatch bool // printed forms agree but underlying types differ
	Blank        bool // placeholder for a missing/surplus-column position
}

// NewCell creates a cell at the given position.
func NewCell(value any, row, col int) *Cell {
	return &Cell{Value: value, Row: row, Col: col}
}

func (c *Cell) clone() *Cell {
	dup := *c
	return &dup
}

// formatValue renders a cell value in its plain printed form. This form
// drives both rendering and the string-representation equality used to
// detect type mismatches.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// formatToken renders a cell value as a type-significant literal token:
// strings double-quoted, nil as "nil", everything else as its plain form.
func formatToken(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	default:
		return formatValue(x)
	}
}

// cellEqual compares two scalar values. It reports equal=true either on
// direct equality or, failing that, on equal printed forms; the latter case
// also reports mismatch=true (same text, different type).
func cellEqual(a, b any) (equal, mismatch bool) {
	if a == b {
		return true, false
	}
	if formatValue(a) == formatValue(b) {
		return true, true
	}
	return false, false
}
