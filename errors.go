package tablediff

import (
	"fmt"
	"strings"
)

// MalformedInputError reports irregular construction input, such as ragged
// rows or maps with inconsistent key sets.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed table input: " + e.Reason
}

// UnknownColumnError reports a strict column mapper whose target header was
// absent when a view was materialized.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// AmbiguousHeaderMatchError reports a header pattern that matched more than
// one header.
type AmbiguousHeaderMatchError struct {
	Pattern string
	Matched []string
}

func (e *AmbiguousHeaderMatchError) Error() string {
	return fmt.Sprintf("header pattern %s matches more than one header: %s",
		e.Pattern, strings.Join(e.Matched, ", "))
}

// WrongShapeError reports a view invoked on a table of an unsupported
// shape, such as RowsHash on a table without exactly two columns.
type WrongShapeError struct {
	Reason string
}

func (e *WrongShapeError) Error() string {
	return e.Reason
}

// DifferentError is the result of a diff that found divergence in at least
// one enabled category. It carries the full annotated table, so callers can
// render the comparison rather than just learn that it failed.
type DifferentError struct {
	Table *Table
}

func (e *DifferentError) Error() string {
	return "tables were not identical:" + Render(e.Table, RenderOptions{Indent: 6})
}
