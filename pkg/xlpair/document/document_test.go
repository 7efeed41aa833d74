package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
)

func sampleSchema() *models.FileSchema {
	fs := models.NewFileSchema("books/example.xlsx")

	first := models.NewSheetSchema("Sheet1")
	pair := models.NewDataPair("A", "1-3", "B-C", "1")
	pair.Src.Values = []any{"hello", int64(42), nil}
	pair.Mt.Values = []any{2.5, true, "x", 2.0, int64(2), 1e21}
	first.SheetData = append(first.SheetData, pair, models.NewDataPair("D", "4", "E", "4"))

	second := models.NewSheetSchema("Other")
	fs.FileData = append(fs.FileData, first, second, models.SheetSchema{})
	return fs
}

func TestRoundTrip(t *testing.T) {
	fs := sampleSchema()

	data, err := Encode(fs)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(fs))
	if diff := cmp.Diff(fs, decoded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	again, err := Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again), "encoding must be byte-stable")
}

func TestEncodeLayout(t *testing.T) {
	data, err := Encode(sampleSchema())
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.Contains(t, text, "\n"+Indent+`"file_path"`)
	assert.Less(t, strings.Index(text, `"file_path"`), strings.Index(text, `"file_data"`))
	assert.Less(t, strings.Index(text, `"columns_range"`), strings.Index(text, `"rows_range"`))
	assert.Less(t, strings.Index(text, `"rows_range"`), strings.Index(text, `"values"`))
	assert.Contains(t, text, `"sheet_id": null`)
	assert.Contains(t, text, "2.0,", "integral floats keep a fraction")
	assert.Contains(t, text, "1e+21")
}

func TestEncodeFillsEmptyCollections(t *testing.T) {
	fs := &models.FileSchema{FilePath: "a.xlsx"}
	data, err := Encode(fs)
	require.NoError(t, err)
	assert.NoError(t, Validate(data))
	assert.Nil(t, fs.FileData, "Encode must not modify its input")
}

func TestDecodeDefaults(t *testing.T) {
	fs, err := Decode([]byte(`{"file_path": "a.xlsx"}`))
	require.NoError(t, err)
	assert.Equal(t, "a.xlsx", fs.FilePath)
	assert.NotNil(t, fs.FileData)
	assert.Empty(t, fs.FileData)

	fs, err = Decode([]byte(`{"file_path": "a.xlsx", "file_data": [{"sheet_id": "S"}]}`))
	require.NoError(t, err)
	require.Len(t, fs.FileData, 1)
	assert.Equal(t, "S", fs.FileData[0].ID())
	assert.NotNil(t, fs.FileData[0].SheetData)
}

func TestDecodeNumbers(t *testing.T) {
	fs, err := Decode([]byte(`{"file_path": "a.xlsx", "file_data": [{"sheet_id": "S", "sheet_data": [
		{"src": {"columns_range": "A", "rows_range": "1-4", "values": [1, 1.5, -7, 1e3, 4.0, 9223372036854775808]}, "mt": {}}
	]}]}`))
	require.NoError(t, err)
	values := fs.FileData[0].SheetData[0].Src.Values
	assert.Equal(t, []any{int64(1), 1.5, int64(-7), 1000.0, 4.0, 9223372036854775808.0}, values)
	assert.Nil(t, fs.FileData[0].SheetData[0].Mt.ColumnsRange)
}

func TestDecodeValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing file_path", `{"file_data": []}`, "file_path"},
		{"wrong file_path type", `{"file_path": 3}`, "file_path"},
		{"wrong sheet_id type", `{"file_path": "a", "file_data": [{"sheet_id": 1}]}`, "sheet_id"},
		{"wrong values type", `{"file_path": "a", "file_data": [{"sheet_data": [{"src": {"values": [{}]}}]}]}`, "values"},
		{"not an object", `[]`, "object"},
		{"malformed", `{"file_path": `, "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.ErrorIs(t, err, ErrSchemaValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Violations)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	fs := sampleSchema()
	require.NoError(t, WriteFile(path, fs))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.Equal(fs))

	err = WriteFile(filepath.Join(dir, "missing", "schema.json"), fs)
	assert.ErrorIs(t, err, ErrDocumentWrite)

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
	_, err = ReadFile(path)
	assert.ErrorIs(t, err, ErrSchemaValidation)
}
