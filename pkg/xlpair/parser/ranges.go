// Package parser resolves range descriptors and reads cell values from
// workbook sheets.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
	"github.com/xuri/excelize/v2"
)

// rangeSeparator splits the start and end of a span descriptor.
const rangeSeparator = "-"

// ParseRange splits a span descriptor such as "A-C" or "1-10" into its
// start and end tokens. A descriptor without a separator is a span of one.
// Token contents are not checked here; the same syntax serves columns and rows.
func ParseRange(s string) (start, end string, err error) {
	if !strings.Contains(s, rangeSeparator) {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", "", newRangeError(ErrInvalidRangeFormat, "range", s, "empty descriptor")
		}
		return s, s, nil
	}
	parts := strings.Split(s, rangeSeparator)
	if len(parts) != 2 {
		return "", "", newRangeError(ErrInvalidRangeFormat, "range", s, "expected format 'start-end'")
	}
	start, end = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if start == "" || end == "" {
		return "", "", newRangeError(ErrInvalidRangeFormat, "range", s, "expected format 'start-end'")
	}
	return start, end, nil
}

// ColumnIndex converts a column name to its 1-based index (A=1, Z=26, AA=27).
// Lower case letters are accepted.
func ColumnIndex(name string) (int, error) {
	idx, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, newRangeError(ErrInvalidColumnRange, "columns_range", name, err.Error())
	}
	return idx, nil
}

// ResolveColumns resolves a columns descriptor to an inclusive 1-based span.
func ResolveColumns(s string) (int, int, error) {
	startName, endName, err := ParseRange(s)
	if err != nil {
		return 0, 0, newRangeError(ErrInvalidColumnRange, "columns_range", s, err.Error())
	}
	start, err := ColumnIndex(startName)
	if err != nil {
		return 0, 0, err
	}
	end, err := ColumnIndex(endName)
	if err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, newRangeError(ErrInvalidColumnRange, "columns_range", s,
			"start column "+startName+" is after end column "+endName)
	}
	return start, end, nil
}

// ResolveRows resolves a rows descriptor to an inclusive 1-based span.
func ResolveRows(s string) (int, int, error) {
	startTok, endTok, err := ParseRange(s)
	if err != nil {
		return 0, 0, newRangeError(ErrInvalidRowRange, "rows_range", s, err.Error())
	}
	if !isDigits(startTok) || !isDigits(endTok) {
		return 0, 0, newRangeError(ErrInvalidRowRange, "rows_range", s, "expected format 'start-end'")
	}
	start, err := strconv.Atoi(startTok)
	if err != nil {
		return 0, 0, newRangeError(ErrInvalidRowRange, "rows_range", s, err.Error())
	}
	end, err := strconv.Atoi(endTok)
	if err != nil {
		return 0, 0, newRangeError(ErrInvalidRowRange, "rows_range", s, err.Error())
	}
	if start < 1 || end > excelize.TotalRows {
		return 0, 0, newRangeError(ErrInvalidRowRange, "rows_range", s, "row out of bounds")
	}
	if start > end {
		return 0, 0, newRangeError(ErrInvalidRowRange, "rows_range", s,
			"start row "+startTok+" is greater than end row "+endTok)
	}
	return start, end, nil
}

// ResolveRange resolves both descriptors of r to concrete coordinates.
func ResolveRange(r models.CellRange) (models.Area, error) {
	if !r.IsSet() {
		return models.Area{}, &RangeError{
			Field:  "range",
			Value:  r.Columns() + ":" + r.Rows(),
			Reason: "both columns_range and rows_range must be set",
			Err:    ErrIncompleteRange,
		}
	}
	c1, c2, err := ResolveColumns(r.Columns())
	if err != nil {
		return models.Area{}, err
	}
	r1, r2, err := ResolveRows(r.Rows())
	if err != nil {
		return models.Area{}, err
	}
	return models.Area{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
