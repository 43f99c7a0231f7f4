package tablediff

import (
	"fmt"
	"strings"
)

// Parse builds a Table from a pipe-delimited table literal:
//
//	| name  | value |
//	| one   | 1111  |
//	| two   | 22222 |
//
// Each non-blank line must start and end with a pipe; cells are trimmed of
// surrounding whitespace. Ragged lines fail with MalformedInputError.
func Parse(src string) (*Table, error) {
	var rows [][]any
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") || len(line) < 2 {
			return nil, &MalformedInputError{
				Reason: fmt.Sprintf("line %d is not a table row: %q", i+1, line),
			}
		}
		parts := strings.Split(line[1:len(line)-1], "|")
		row := make([]any, len(parts))
		for c, p := range parts {
			row[c] = strings.TrimSpace(p)
		}
		rows = append(rows, row)
	}
	return From(rows)
}
