package xlpair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSheetRef(t *testing.T) {
	tests := []struct {
		in      string
		want    SheetRef
		isIndex bool
	}{
		{"Data", ByName("Data"), false},
		{"#2", ByIndex(2), true},
		{"#x", ByName("#x"), false},
		{"#", ByName("#"), false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseSheetRef(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.isIndex, got.IsIndex())
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestSheetRefResolve(t *testing.T) {
	sheets := []string{"Sheet1", "Data"}

	name, err := ByIndex(1).resolve(sheets)
	require.NoError(t, err)
	assert.Equal(t, "Data", name)

	name, err = ByName("Anything").resolve(sheets)
	require.NoError(t, err)
	assert.Equal(t, "Anything", name)

	for _, idx := range []int{-1, 2} {
		_, err = ByIndex(idx).resolve(sheets)
		assert.ErrorIs(t, err, ErrSheetNotFoundInWorkbook)
	}
}
