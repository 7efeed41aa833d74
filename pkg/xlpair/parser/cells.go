package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellValue returns the value of a cell typed the way the workbook stores it:
// bool for boolean cells, string for text cells, int64 or float64 for
// numbers, and nil for empty cells. Formula cells yield their cached result.
func CellValue(f *excelize.File, sheetName, cell string) (any, error) {
	raw, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	typ, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return nil, err
	}
	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "TRUE"), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return raw, nil
	default:
		return parseValue(raw), nil
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
