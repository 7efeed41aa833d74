package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellRangeEqual(t *testing.T) {
	a := NewCellRange("A-C", "1-10")
	b := NewCellRange("A-C", "1-10")
	assert.True(t, a.Equal(b))
	assert.True(t, a.SameRange(b))

	b.Values = []any{"x"}
	assert.False(t, a.Equal(b), "nil values must not equal a snapshot")
	assert.True(t, a.SameRange(b))

	a.Values = []any{"x"}
	assert.True(t, a.Equal(b))

	a.Values = []any{int64(1)}
	b.Values = []any{1.0}
	assert.False(t, a.Equal(b), "int64 and float64 are different stored values")

	assert.False(t, NewCellRange("A", "1").SameRange(CellRange{}))
	assert.True(t, CellRange{}.Equal(CellRange{}))
}

func TestCellRangeIsSet(t *testing.T) {
	assert.True(t, NewCellRange("A", "1").IsSet())
	assert.False(t, CellRange{}.IsSet())
	assert.False(t, NewCellRange("", "1").IsSet())
	cols := "A"
	assert.False(t, CellRange{ColumnsRange: &cols}.IsSet())
}

func TestCloneIsDeep(t *testing.T) {
	src := NewFileSchema("book.xlsx")
	sheet := NewSheetSchema("Sheet1")
	pair := NewDataPair("A", "1-2", "B", "1-2")
	pair.Src.Values = []any{"a", nil}
	sheet.SheetData = append(sheet.SheetData, pair)
	src.FileData = append(src.FileData, sheet)

	c := src.Clone()
	require.True(t, c.Equal(src))

	*c.FileData[0].SheetID = "Other"
	*c.FileData[0].SheetData[0].Src.ColumnsRange = "Z"
	c.FileData[0].SheetData[0].Src.Values[0] = "changed"

	assert.Equal(t, "Sheet1", src.FileData[0].ID())
	assert.Equal(t, "A", src.FileData[0].SheetData[0].Src.Columns())
	assert.Equal(t, "a", src.FileData[0].SheetData[0].Src.Values[0])
	assert.False(t, c.Equal(src))
}

func TestFindSheetFirstMatch(t *testing.T) {
	fs := NewFileSchema("book.xlsx")
	first := NewSheetSchema("Sheet1")
	second := NewSheetSchema("Sheet1")
	second.SheetData = append(second.SheetData, NewDataPair("A", "1", "B", "1"))
	fs.FileData = append(fs.FileData, SheetSchema{}, first, second)

	idx, s := fs.FindSheet("Sheet1")
	require.NotNil(t, s)
	assert.Equal(t, 1, idx)
	assert.Empty(t, s.SheetData)

	idx, s = fs.FindSheet("missing")
	assert.Equal(t, -1, idx)
	assert.Nil(t, s)

	assert.Equal(t, []string{"Sheet1", "Sheet1"}, fs.SheetIDs())
}

func TestSheetIndexOfIgnoresValues(t *testing.T) {
	s := NewSheetSchema("Sheet1")
	p := NewDataPair("A", "1-2", "B", "1-2")
	p.Src.Values = []any{"old"}
	s.SheetData = append(s.SheetData, NewDataPair("C", "1", "D", "1"), p)

	q := NewDataPair("A", "1-2", "B", "1-2")
	q.Src.Values = []any{"new"}
	assert.Equal(t, 1, s.IndexOf(q))
	assert.Equal(t, -1, s.IndexOf(NewDataPair("A", "1-3", "B", "1-3")))
}

func TestAreaCells(t *testing.T) {
	assert.Equal(t, 6, Area{R1: 1, C1: 1, R2: 2, C2: 3}.Cells())
	assert.Equal(t, 1, Area{R1: 4, C1: 2, R2: 4, C2: 2}.Cells())
}
