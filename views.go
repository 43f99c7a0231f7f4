package tablediff

import "strings"

// Headers returns the pipeline-applied header row.
func (t *Table) Headers() ([]string, error) {
	headers, _, err := t.materialize()
	return headers, err
}

// Hashes materializes each data row as a map keyed by the pipeline-applied
// headers.
func (t *Table) Hashes() ([]map[string]any, error) {
	headers, data, err := t.materialize()
	if err != nil {
		return nil, err
	}
	hashes := make([]map[string]any, len(data))
	for i, row := range data {
		h := make(map[string]any, len(headers))
		for c, name := range headers {
			h[name] = row[c]
		}
		hashes[i] = h
	}
	return hashes, nil
}

// SymbolicHashes is Hashes with normalized keys: lowercase, non-alphanumeric
// runs collapsed to a single underscore, leading and trailing underscores
// trimmed. Calling it has no effect on later Hashes calls.
func (t *Table) SymbolicHashes() ([]map[string]any, error) {
	headers, data, err := t.materialize()
	if err != nil {
		return nil, err
	}
	hashes := make([]map[string]any, len(data))
	for i, row := range data {
		h := make(map[string]any, len(headers))
		for c, name := range headers {
			h[symbolize(name)] = row[c]
		}
		hashes[i] = h
	}
	return hashes, nil
}

// AllRows returns every row, header row included, with the pipeline
// applied. Header cells come back as their mapped string names.
func (t *Table) AllRows() ([][]any, error) {
	headers, data, err := t.materialize()
	if err != nil {
		return nil, err
	}
	if headers == nil {
		return nil, nil
	}
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	return append([][]any{headerRow}, data...), nil
}

// DataRows returns the pipeline-applied rows after the header row. This is
// the view that feeds typical comparisons.
func (t *Table) DataRows() ([][]any, error) {
	_, data, err := t.materialize()
	return data, err
}

// RowsHash reads a two-column table as a map from first-column values to
// second-column values across every row, first row included. Any other
// column count fails with WrongShapeError.
func (t *Table) RowsHash() (map[string]any, error) {
	if t.NumCols() != 2 {
		return nil, &WrongShapeError{Reason: "the table must have exactly 2 columns"}
	}
	headers, data, err := t.materialize()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(data)+1)
	out[headers[0]] = headers[1]
	for _, row := range data {
		out[formatValue(row[0])] = row[1]
	}
	return out, nil
}

// Match reports whether candidate selects this table: it must carry the
// literal prefix "table:" and its comma-split remainder must equal the
// pipeline-applied header row in order. A false result is a normal
// negative, not an error.
func (t *Table) Match(candidate string) (bool, error) {
	rest, ok := strings.CutPrefix(candidate, "table:")
	if !ok {
		return false, nil
	}
	headers, err := t.Headers()
	if err != nil {
		return false, err
	}
	names := strings.Split(rest, ",")
	if len(names) != len(headers) {
		return false, nil
	}
	for i, name := range names {
		if name != headers[i] {
			return false, nil
		}
	}
	return true, nil
}
