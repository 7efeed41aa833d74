package xlpair

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/parser"
)

// Workbook is an open spreadsheet file.
type Workbook interface {
	// Path returns the file the workbook was opened from.
	Path() string
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// Sheet returns a read-only view of the named sheet.
	Sheet(name string) (parser.Sheet, bool)
	// Rows returns the text of every row of the named sheet.
	Rows(sheet string) ([][]string, error)
	// SetCellValue writes value to the cell at address (e.g. "B4").
	SetCellValue(sheet, address string, value any) error
	// DeleteSheet removes the named sheet.
	DeleteSheet(sheet string) error
	// SaveAs writes the workbook to path.
	SaveAs(path string) error
	// Close releases the workbook.
	Close() error
}

// excelWorkbook is a Workbook backed by excelize.
type excelWorkbook struct {
	f    *excelize.File
	path string
}

// OpenWorkbook opens the xlsx file at path with excelize.
func OpenWorkbook(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return &excelWorkbook{f: f, path: path}, nil
}

func (w *excelWorkbook) Path() string {
	return w.path
}

func (w *excelWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *excelWorkbook) Sheet(name string) (parser.Sheet, bool) {
	if !slices.Contains(w.f.GetSheetList(), name) {
		return nil, false
	}
	return excelSheet{f: w.f, name: name}, true
}

func (w *excelWorkbook) Rows(sheet string) ([][]string, error) {
	return w.f.GetRows(sheet)
}

func (w *excelWorkbook) SetCellValue(sheet, address string, value any) error {
	return w.f.SetCellValue(sheet, address, value)
}

func (w *excelWorkbook) DeleteSheet(sheet string) error {
	if err := w.f.DeleteSheet(sheet); err != nil {
		return err
	}
	// excelize silently keeps the only sheet of a workbook
	if slices.Contains(w.f.GetSheetList(), sheet) {
		return fmt.Errorf("%w: %q", ErrLastSheet, sheet)
	}
	return nil
}

func (w *excelWorkbook) SaveAs(path string) error {
	return w.f.SaveAs(path)
}

func (w *excelWorkbook) Close() error {
	return w.f.Close()
}

// excelSheet reads cells of one excelize worksheet.
type excelSheet struct {
	f    *excelize.File
	name string
}

func (s excelSheet) CellValue(col, row int) (any, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	return parser.CellValue(s.f, s.name, cell)
}
