package tablediff

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// RenderOptions configures diff rendering.
type RenderOptions struct {
	Indent int  // spaces prefixed to every line
	Color  bool // highlight removed rows red and inserted rows green
}

// Render turns an annotated table into indented, pipe-separated text.
// Column widths are computed over the printed cell forms, including the
// status markers "(-) " (removed), "(+) " (inserted), four blanks
// (unchanged) and the extra "(i) " on type-mismatch cells, which also print
// their values as quoted tokens. Blank placeholder cells render as pure
// padding. The output carries a leading and a trailing newline.
func Render(t *Table, opts RenderOptions) string {
	rows := t.Rows()
	if len(rows) == 0 {
		return "\n"
	}

	texts := make([][]string, len(rows))
	widths := make([]int, len(rows[0]))
	for r, row := range rows {
		texts[r] = make([]string, len(row))
		for c, cell := range row {
			text := cellText(cell)
			texts[r][c] = text
			if w := runewidth.StringWidth(text); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	b.WriteByte('\n')
	for r, row := range rows {
		b.WriteString(strings.Repeat(" ", opts.Indent))
		b.WriteString("| ")
		for c, cell := range row {
			if c > 0 {
				b.WriteString(" | ")
			}
			padded := pad(texts[r][c], widths[c])
			if opts.Color && !cell.Blank {
				if hl := statusColor(cell.Status); hl != nil {
					padded = hl.Sprint(padded)
				}
			}
			b.WriteString(padded)
		}
		b.WriteString(" |")
		if r < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// cellText returns the printed form of a cell, marker included.
func cellText(c *Cell) string {
	if c.Blank {
		return ""
	}
	var marker string
	switch c.Status {
	case StatusRemoved:
		marker = "(-) "
	case StatusInserted:
		marker = "(+) "
	default:
		marker = "    "
	}
	if c.TypeMismatch {
		return marker + "(i) " + formatToken(c.Value)
	}
	return marker + formatValue(c.Value)
}

func pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// statusColor returns the highlight for a cell status, forced on so output
// is deterministic regardless of whether stdout is a terminal.
func statusColor(s CellStatus) *color.Color {
	var hl *color.Color
	switch s {
	case StatusRemoved:
		hl = color.New(color.FgRed)
	case StatusInserted:
		hl = color.New(color.FgGreen)
	default:
		return nil
	}
	hl.EnableColor()
	return hl
}
