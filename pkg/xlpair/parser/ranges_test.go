package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input      string
		start, end string
	}{
		{"A", "A", "A"},
		{"5", "5", "5"},
		{"AB", "AB", "AB"},
		{"A-C", "A", "C"},
		{"1-10", "1", "10"},
		{" A - C ", "A", "C"},
		{"10-2", "10", "2"}, // ordering is checked by the resolvers
	}
	for _, tt := range tests {
		start, end, err := ParseRange(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.start, start, tt.input)
		assert.Equal(t, tt.end, end, tt.input)
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, input := range []string{"A-B-C", "1-2-3", "-", "A-", "-5", "", "  "} {
		_, _, err := ParseRange(input)
		assert.ErrorIs(t, err, ErrInvalidRangeFormat, input)
	}
}

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		name string
		idx  int
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"AZ", 52},
		{"BA", 53},
		{"a", 1},
		{"xfd", 16384},
	}
	for _, tt := range tests {
		idx, err := ColumnIndex(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.idx, idx, tt.name)
	}

	for _, bad := range []string{"", "1", "A1", "XFE", "?"} {
		_, err := ColumnIndex(bad)
		assert.ErrorIs(t, err, ErrInvalidColumnRange, bad)
	}
}

func TestColumnIndexBijection(t *testing.T) {
	for i := 1; i <= 1000; i++ {
		name, err := excelize.ColumnNumberToName(i)
		require.NoError(t, err)
		idx, err := ColumnIndex(name)
		require.NoError(t, err)
		require.Equal(t, i, idx, name)
	}
}

func TestResolveRange(t *testing.T) {
	area, err := ResolveRange(models.NewCellRange("B-D", "2-5"))
	require.NoError(t, err)
	assert.Equal(t, models.Area{R1: 2, C1: 2, R2: 5, C2: 4}, area)

	area, err = ResolveRange(models.NewCellRange("c", "7"))
	require.NoError(t, err)
	assert.Equal(t, models.Area{R1: 7, C1: 3, R2: 7, C2: 3}, area)
}

func TestResolveRangeErrors(t *testing.T) {
	tests := []struct {
		name    string
		r       models.CellRange
		wantErr error
	}{
		{"unset", models.CellRange{}, ErrIncompleteRange},
		{"missing rows", models.NewCellRange("A", ""), ErrIncompleteRange},
		{"bad column", models.NewCellRange("A1", "1"), ErrInvalidColumnRange},
		{"too many column parts", models.NewCellRange("A-B-C", "1"), ErrInvalidColumnRange},
		{"reversed columns", models.NewCellRange("C-A", "1"), ErrInvalidColumnRange},
		{"reversed rows", models.NewCellRange("A", "5-2"), ErrInvalidRowRange},
		{"letters in rows", models.NewCellRange("A", "A-B"), ErrInvalidRowRange},
		{"row zero", models.NewCellRange("A", "0-2"), ErrInvalidRowRange},
		{"negative row", models.NewCellRange("A", "-1"), ErrInvalidRowRange},
		{"too many row parts", models.NewCellRange("A", "1-2-3"), ErrInvalidRowRange},
		{"row past sheet end", models.NewCellRange("A", "1-1048577"), ErrInvalidRowRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRange(tt.r)
			assert.ErrorIs(t, err, tt.wantErr)
			var rangeErr *RangeError
			assert.ErrorAs(t, err, &rangeErr)
		})
	}
}
