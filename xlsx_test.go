package tablediff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, cells map[string]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestFromWorkbook(t *testing.T) {
	data := workbookBytes(t, map[string]any{
		"A1": "name", "B1": "value",
		"A2": "one", "B2": "1111",
	})

	tbl, err := FromWorkbook(bytes.NewReader(data), "Sheet1")
	require.NoError(t, err)

	rows, err := tbl.AllRows()
	require.NoError(t, err)
	assert.Equal(t, [][]any{
		{"name", "value"},
		{"one", "1111"},
	}, rows)
}

func TestFromWorkbook_PadsShortRows(t *testing.T) {
	// B2 is left empty; excelize trims it from the row, the table pads it back.
	data := workbookBytes(t, map[string]any{
		"A1": "name", "B1": "value",
		"A2": "one",
	})

	tbl, err := FromWorkbook(bytes.NewReader(data), "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, "", tbl.Rows()[1][1].Value)
}

func TestFromWorkbook_UnknownSheet(t *testing.T) {
	data := workbookBytes(t, map[string]any{"A1": "x"})
	_, err := FromWorkbook(bytes.NewReader(data), "Nope")
	assert.Error(t, err)
}

func TestFromWorkbook_FeedsDiff(t *testing.T) {
	data := workbookBytes(t, map[string]any{
		"A1": "h",
		"A2": "1",
	})
	tbl, err := FromWorkbook(bytes.NewReader(data), "Sheet1")
	require.NoError(t, err)

	_, err = tbl.Diff([][]string{{"h"}, {"1"}}, nil)
	assert.NoError(t, err)
}
