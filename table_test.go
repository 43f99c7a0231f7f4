package tablediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFrom(t *testing.T, rows [][]any) *Table {
	t.Helper()
	tbl, err := From(rows)
	require.NoError(t, err)
	return tbl
}

func TestFrom_Rectangular(t *testing.T) {
	tbl := mustFrom(t, [][]any{
		{"name", "value"},
		{"one", "1111"},
		{"two", "22222"},
	})
	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, "1111", tbl.Rows()[1][1].Value)
}

func TestFrom_RaggedInput(t *testing.T) {
	_, err := From([][]any{
		{"a", "b"},
		{"c"},
	})
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
}

func TestFrom_NonScalarValue(t *testing.T) {
	var malformed *MalformedInputError

	_, err := From([][]any{
		{"h"},
		{[]string{"not", "a", "scalar"}},
	})
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "expected a scalar")

	_, err = From([][]any{
		{"h"},
		{map[string]any{"nested": true}},
	})
	require.ErrorAs(t, err, &malformed)

	// Numeric and nil cells are all fine.
	_, err = From([][]any{
		{"a", "b", "c", "d"},
		{1, int64(2), 3.5, nil},
	})
	assert.NoError(t, err)
}

func TestFrom_Empty(t *testing.T) {
	tbl := mustFrom(t, nil)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 0, tbl.NumCols())
	assert.Nil(t, tbl.Columns())
}

func TestFromStrings(t *testing.T) {
	tbl, err := FromStrings([][]string{{"h"}, {"v"}})
	require.NoError(t, err)
	assert.Equal(t, "v", tbl.Rows()[1][0].Value)
}

func TestRowColumnIdentity(t *testing.T) {
	tbl := mustFrom(t, [][]any{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	rows := tbl.Rows()
	cols := tbl.Columns()
	for r := range rows {
		for c := range rows[r] {
			assert.Same(t, rows[r][c], cols[c][r], "rows[%d][%d] vs columns[%d][%d]", r, c, c, r)
		}
	}
}

func TestRowColumnIdentity_AfterMapping(t *testing.T) {
	tbl := mustFrom(t, [][]any{{"a", "b"}, {"1", "2"}})
	mapped := tbl.MapColumn("a", false, func(v any) any { return v })
	rows := mapped.Rows()
	cols := mapped.Columns()
	for r := range rows {
		for c := range rows[r] {
			assert.Same(t, rows[r][c], cols[c][r])
		}
	}
}

func TestFromMaps(t *testing.T) {
	tbl, err := FromMaps([]map[string]any{
		{"name": "alice", "age": "30"},
		{"name": "bob", "age": "25"},
	})
	require.NoError(t, err)

	// Headers come from the first map's keys in sorted order.
	headers, err := tbl.Headers()
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "name"}, headers)

	hashes, err := tbl.Hashes()
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"age": "30", "name": "alice"},
		{"age": "25", "name": "bob"},
	}, hashes)
}

func TestFromMaps_InconsistentKeys(t *testing.T) {
	_, err := FromMaps([]map[string]any{
		{"name": "alice"},
		{"nickname": "bob"},
	})
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)

	_, err = FromMaps([]map[string]any{
		{"name": "alice"},
		{"name": "bob", "age": "25"},
	})
	require.ErrorAs(t, err, &malformed)
}

func TestFromMaps_Empty(t *testing.T) {
	tbl, err := FromMaps(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
}

func TestDup_Independent(t *testing.T) {
	tbl := mustFrom(t, [][]any{{"h"}, {"v"}})
	dup := tbl.Dup()
	dup.Rows()[1][0].Value = "changed"
	assert.Equal(t, "v", tbl.Rows()[1][0].Value)
}

func TestCellStatusString(t *testing.T) {
	assert.Equal(t, "Unchanged", StatusUnchanged.String())
	assert.Equal(t, "Removed", StatusRemoved.String())
	assert.Equal(t, "Inserted", StatusInserted.String())
	assert.Equal(t, "Unknown", CellStatus(99).String())
}
