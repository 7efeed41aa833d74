package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlpair-go/pkg/xlpair"
	"github.com/ukaji3/xlpair-go/pkg/xlpair/document"
)

type env struct {
	dir  string
	book string
	base []string
}

func newEnv(t *testing.T) env {
	t.Helper()
	t.Setenv("XLPAIR_AUTOSAVE_DIR", "")
	t.Setenv("XLPAIR_AUTOLOAD", "")
	t.Setenv("XLPAIR_LOG_LEVEL", "error")

	dir := t.TempDir()
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	for cell, v := range map[string]any{
		"A1": "name", "B1": "qty",
		"A2": "apple", "B2": 3,
		"A3": "pear", "B3": 5,
	} {
		require.NoError(t, f.SetCellValue("Data", cell, v))
	}
	book := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(book))

	return env{
		dir:  dir,
		book: book,
		base: []string{
			"--config", filepath.Join(dir, "xlpair.yaml"),
			"--autosave-dir", filepath.Join(dir, "autosaves"),
		},
	}
}

// run executes one command line and returns its standard output.
func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := e.runCLI(t, args...)
	return out, err
}

// runCLI is run that also returns the command's state after teardown.
func (e env) runCLI(t *testing.T, args ...string) (string, *cli, error) {
	t.Helper()
	cmd, c := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(append([]string{}, e.base...), args...))
	err := c.execute(cmd)
	return out.String(), c, err
}

func (e env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, "xlpair %s", strings.Join(args, " "))
	return out
}

func TestAddPairThenExport(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "-f", e.book, "add-pair", "Data", "A", "2-3", "B", "2-3")
	assert.Equal(t, "added Data[0]\n", out)

	// the autosave document carries the pair into the next run
	out = e.mustRun(t, "-f", e.book, "export")
	assert.JSONEq(t, `{"Data": [{"src": ["apple", "pear"], "mt": [3, 5]}]}`, out)

	out = e.mustRun(t, "-f", e.book, "add-pair", "#1", "--src", "A2:A3", "--mt", "$B$2:$B$3")
	assert.Equal(t, "updated Data[0]\n", out)

	_, err := e.run(t, "-f", e.book, "add-pair", "Data", "A", "2-3", "B", "2-3", "--strict")
	assert.ErrorIs(t, err, xlpair.ErrDuplicateDataPair)

	out = e.mustRun(t, "-f", e.book, "sheets", "--schema")
	assert.Equal(t, "Data\n", out)

	out = e.mustRun(t, "-f", e.book, "get", "Data", "--src", "A1:B1", "--mt", "A3:B3")
	assert.JSONEq(t, `{"src": ["name", "qty"], "mt": ["pear", 5]}`, out)
}

func TestSetCellAndPreview(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "-f", e.book, "set-cell", "Data", "C2", "7")
	assert.Equal(t, "written Data!C2\n", out)

	out = e.mustRun(t, "-f", e.book, "preview", "Data", "A2:C2")
	assert.JSONEq(t, `["apple", 3, 7]`, out)

	out = e.mustRun(t, "-f", e.book, "preview", "Data", "C", "2")
	assert.JSONEq(t, `[7]`, out)

	out = e.mustRun(t, "-f", e.book, "bounds", "Data")
	assert.Equal(t, "A-C\t1-3\n", out)
}

func TestRemovePair(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "-f", e.book, "add-pair", "Data", "A", "2", "B", "2")
	e.mustRun(t, "-f", e.book, "add-pair", "Data", "A", "3", "B", "3")

	_, err := e.run(t, "-f", e.book, "remove-pair", "Data", "5")
	assert.ErrorIs(t, err, xlpair.ErrIndexOutOfRange)

	out := e.mustRun(t, "-f", e.book, "remove-pair", "Data", "0")
	assert.Equal(t, "removed Data[0]\n", out)

	out = e.mustRun(t, "-f", e.book, "pairs", "Data")
	assert.JSONEq(t, `[{
		"src": {"columns_range": "A", "rows_range": "3", "values": ["pear"]},
		"mt": {"columns_range": "B", "rows_range": "3", "values": [5]}
	}]`, out)
}

func TestSaveAndLoad(t *testing.T) {
	e := newEnv(t)
	// --autoload=false turns autosave off, so nothing survives the run
	e.mustRun(t, "-f", e.book, "--autoload=false", "add-pair", "Data", "A", "2", "B", "2")
	out := e.mustRun(t, "-f", e.book, "--autoload=false", "schema")
	require.NoError(t, document.Validate([]byte(out)))
	assert.Contains(t, out, `"file_data": []`)

	doc := filepath.Join(e.dir, "mapping.json")
	e.mustRun(t, "-f", e.book, "add-pair", "Data", "A", "2", "B", "2")
	out = e.mustRun(t, "-f", e.book, "save", doc)
	assert.Equal(t, "saved "+doc+"\n", out)

	out = e.mustRun(t, "load", doc)
	assert.Equal(t, "loaded "+e.book+"\n", out)

	saved, err := document.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, e.book, saved.FilePath)
	assert.Equal(t, []string{"Data"}, saved.SheetIDs())
}

func TestFilesAndSheets(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "files", e.dir)
	assert.Equal(t, "0\tbook.xlsx\n", out)

	out = e.mustRun(t, "--dir", e.dir, "--index", "0", "sheets")
	assert.Equal(t, "Sheet1\nData\n", out)

	out = e.mustRun(t, "--dir", e.dir, "--name", "book.xlsx", "add-sheet", "#0")
	assert.Equal(t, "added Sheet1\n", out)
}

func TestErrors(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "pairs", "Data")
	assert.ErrorIs(t, err, xlpair.ErrNoFileSelected)

	_, err = e.run(t, "-f", filepath.Join(e.dir, "missing.xlsx"), "sheets")
	assert.ErrorIs(t, err, xlpair.ErrFileNotFound)

	_, err = e.run(t, "-f", e.book, "preview", "Data", "B-A", "1")
	assert.ErrorIs(t, err, xlpair.ErrInvalidColumnRange)

	_, err = e.run(t, "-f", e.book, "add-pair", "Data", "--src", "A1")
	assert.ErrorContains(t, err, "--mt")

	_, err = e.run(t, "-f", e.book, "set-cell", "Data", "A1", "x", "--type", "int")
	assert.Error(t, err)
}

func TestTeardownAfterFailure(t *testing.T) {
	e := newEnv(t)

	_, c, err := e.runCLI(t, "-f", e.book, "remove-pair", "Data", "3")
	require.ErrorIs(t, err, xlpair.ErrSheetNotInSchema)
	require.NotNil(t, c.store)
	assert.Empty(t, c.store.FilePath(), "the workbook is closed even when the command fails")

	_, c, err = e.runCLI(t, "-f", e.book, "sheets")
	require.NoError(t, err)
	assert.Empty(t, c.store.FilePath())
}

func TestParseCellValue(t *testing.T) {
	tests := []struct {
		in, typ string
		want    any
	}{
		{"42", "auto", int64(42)},
		{"2.5", "auto", 2.5},
		{"TRUE", "auto", true},
		{"false", "auto", false},
		{"hello", "auto", "hello"},
		{"42", "string", "42"},
		{"1", "bool", true},
		{"3", "float", 3.0},
	}
	for _, tt := range tests {
		got, err := parseCellValue(tt.in, tt.typ)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s as %s", tt.in, tt.typ)
	}

	_, err := parseCellValue("x", "date")
	assert.Error(t, err)
}
