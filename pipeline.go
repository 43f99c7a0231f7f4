package tablediff

import (
	"regexp"
	"strings"
	"unicode"
)

// columnMapper is a deferred per-cell transform keyed by header name. The
// selector matches a materialized header by exact string or symbolic-name
// equality. A strict mapper whose selector matches nothing fails when a
// view is materialized, never when the mapper is attached.
type columnMapper struct {
	selector string
	strict   bool
	fn       func(any) (any, error)
}

// headerMapper is a deferred rename/transform over header cell values. An
// explicit rename takes precedence over the blanket transform for the
// headers it matches.
type headerMapper struct {
	renames   []HeaderRename
	transform func(string) string
}

// HeaderRename maps a header, selected by exact name or by pattern, to a
// new name. Exactly one of Match and Pattern should be set.
type HeaderRename struct {
	Match   string
	Pattern *regexp.Regexp
	Name    string
}

// MapColumn attaches a transform applied to every non-header cell of the
// named column whenever a view is materialized. It returns a new Table;
// the receiver is unchanged. With strict set, materializing any view fails
// with UnknownColumnError if the column does not exist at that point.
func (t *Table) MapColumn(name string, strict bool, fn func(any) any) *Table {
	dup := t.derive()
	dup.colMappers = append(dup.colMappers, columnMapper{
		selector: name,
		strict:   strict,
		fn: func(v any) (any, error) {
			return fn(v), nil
		},
	})
	return dup
}

// MapHeaders attaches a header transform plus any number of explicit
// renames, returning a new Table. Renames win over the transform for the
// headers they match. Successive MapHeaders calls compose in attachment
// order. A Pattern rename that matches more than one header fails with
// AmbiguousHeaderMatchError when headers are materialized.
func (t *Table) MapHeaders(transform func(string) string, renames ...HeaderRename) *Table {
	dup := t.derive()
	dup.headerMappers = append(dup.headerMappers, headerMapper{
		renames:   append([]HeaderRename(nil), renames...),
		transform: transform,
	})
	return dup
}

// materialize applies the full pipeline to the current table state and
// returns the mapped header names together with the mapped data rows (the
// rows after the header row). It recomputes everything on every call so
// repeated materializations stay side-effect free.
func (t *Table) materialize() (headers []string, data [][]any, err error) {
	if len(t.cells) == 0 {
		return nil, nil, nil
	}

	headers = make([]string, len(t.cells[0]))
	for c, cell := range t.cells[0] {
		headers[c] = formatValue(cell.Value)
	}
	for _, hm := range t.headerMappers {
		if headers, err = hm.apply(headers); err != nil {
			return nil, nil, err
		}
	}

	data = make([][]any, 0, len(t.cells)-1)
	for _, row := range t.cells[1:] {
		values := make([]any, len(row))
		for c, cell := range row {
			values[c] = cell.Value
		}
		data = append(data, values)
	}

	for _, cm := range t.colMappers {
		cols := cm.matchColumns(headers)
		if len(cols) == 0 {
			if cm.strict {
				return nil, nil, &UnknownColumnError{Column: cm.selector}
			}
			continue
		}
		for _, c := range cols {
			for _, row := range data {
				if row[c], err = cm.fn(row[c]); err != nil {
					return nil, nil, err
				}
			}
		}
	}
	return headers, data, nil
}

// apply folds one header mapper over the current header names.
func (hm headerMapper) apply(headers []string) ([]string, error) {
	out := make([]string, len(headers))
	renamed := make([]bool, len(headers))
	copy(out, headers)

	for _, r := range hm.renames {
		if r.Pattern != nil {
			var matched []int
			for i, h := range headers {
				if r.Pattern.MatchString(h) {
					matched = append(matched, i)
				}
			}
			if len(matched) > 1 {
				names := make([]string, len(matched))
				for i, m := range matched {
					names[i] = headers[m]
				}
				return nil, &AmbiguousHeaderMatchError{Pattern: r.Pattern.String(), Matched: names}
			}
			if len(matched) == 1 {
				out[matched[0]] = r.Name
				renamed[matched[0]] = true
			}
			continue
		}
		for i, h := range headers {
			if h == r.Match {
				out[i] = r.Name
				renamed[i] = true
			}
		}
	}

	if hm.transform != nil {
		for i := range out {
			if !renamed[i] {
				out[i] = hm.transform(out[i])
			}
		}
	}
	return out, nil
}

// matchColumns returns the indices of all headers the mapper's selector
// matches, by exact or symbolic-name equality. Duplicate headers all match.
func (cm columnMapper) matchColumns(headers []string) []int {
	var cols []int
	for i, h := range headers {
		if h == cm.selector || symbolize(h) == cm.selector {
			cols = append(cols, i)
		}
	}
	return cols
}

// symbolize normalizes a header name: lowercase, runs of non-alphanumeric
// characters collapsed to a single underscore, leading and trailing
// underscores trimmed.
func symbolize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
