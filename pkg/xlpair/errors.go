package xlpair

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/document"
	"github.com/ukaji3/xlpair-go/pkg/xlpair/parser"
)

// ErrNoFileSelected indicates an operation needs a bound workbook and none is selected.
var ErrNoFileSelected = errors.New("no excel file selected")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrDirectoryNotFound indicates the directory to select a file from does not exist.
var ErrDirectoryNotFound = errors.New("directory not found")

// ErrAmbiguousSelector indicates a file selector names neither a path nor a directory entry.
var ErrAmbiguousSelector = errors.New("ambiguous file selector")

// ErrSheetNotInSchema indicates the sheet has no schema entry.
var ErrSheetNotInSchema = errors.New("sheet does not exist in the schema")

// ErrSheetNotFoundInWorkbook indicates the sheet does not exist in the bound workbook.
var ErrSheetNotFoundInWorkbook = errors.New("sheet does not exist in the excel file")

// ErrDuplicateSheet indicates the sheet already has a schema entry.
var ErrDuplicateSheet = errors.New("sheet already exists in the schema")

// ErrDuplicateDataPair indicates an equal data pair already exists in the sheet.
var ErrDuplicateDataPair = errors.New("duplicate data pair")

// ErrIndexOutOfRange indicates a data pair index outside the sheet's pairs.
var ErrIndexOutOfRange = errors.New("data pair index out of range")

// ErrLastSheet indicates an attempt to delete the only sheet of a workbook.
var ErrLastSheet = errors.New("cannot delete the last sheet")

// ErrInvalidCellAddress indicates a cell reference such as "A1" could not be parsed.
var ErrInvalidCellAddress = errors.New("invalid cell address")

// ErrWorkbookPersistFailure indicates the workbook could not be written back to disk.
var ErrWorkbookPersistFailure = errors.New("failed to save workbook")

// ErrAutosaveFailure indicates the autosave document could not be written.
var ErrAutosaveFailure = errors.New("failed to autosave schema")

// Range and document errors, re-exported so callers only need this package.
var (
	ErrInvalidRangeFormat = parser.ErrInvalidRangeFormat
	ErrIncompleteRange    = parser.ErrIncompleteRange
	ErrInvalidColumnRange = parser.ErrInvalidColumnRange
	ErrInvalidRowRange    = parser.ErrInvalidRowRange
	ErrDocumentNotFound   = document.ErrDocumentNotFound
	ErrSchemaValidation   = document.ErrSchemaValidation
	ErrDocumentWrite      = document.ErrDocumentWrite
)

// SheetError represents a failed operation on a sheet.
type SheetError struct {
	SheetName string
	Op        string // "add_sheet", "remove_sheet", "add_data_pair", ...
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s on sheet %q: %v", e.Op, e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
