package tablediff

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// MapColumnExpr attaches a column transform written as an expr-lang
// expression instead of a Go function. The expression sees the cell value
// as "value" and its result replaces the cell, e.g. `upper(value)` or
// `int(value) * 2`. Compilation happens here; evaluation follows the same
// lazy, once-per-cell-per-materialization rules as MapColumn, and with
// strict set a missing column still only fails when a view is materialized.
func (t *Table) MapColumnExpr(name string, strict bool, expression string) (*Table, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}
	dup := t.derive()
	dup.colMappers = append(dup.colMappers, columnMapper{
		selector: name,
		strict:   strict,
		fn: func(v any) (any, error) {
			out, err := expr.Run(program, map[string]any{"value": v})
			if err != nil {
				return nil, fmt.Errorf("evaluate expression %q: %w", expression, err)
			}
			return out, nil
		},
	})
	return dup, nil
}
