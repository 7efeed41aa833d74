package parser

import (
	"strings"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
	"github.com/xuri/excelize/v2"
)

// ParseA1Range converts an A1-style reference such as "A1:C10",
// "$A$1:$C$10", "'Sheet 1'!A1:C10" or a single cell "B4" into columns and
// rows descriptors ("A-C", "1-10").
func ParseA1Range(ref string) (columns, rows string, err error) {
	rangeStr := strings.TrimSpace(ref)
	// Drop the sheet qualifier
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) > 2 {
		return "", "", newRangeError(ErrInvalidRangeFormat, "range", ref, "expected format 'A1:C10'")
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", "", newRangeError(ErrInvalidRangeFormat, "range", ref, err.Error())
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", "", newRangeError(ErrInvalidRangeFormat, "range", ref, err.Error())
	}

	r, err := AreaToRange(normalizeArea(startCol, startRow, endCol, endRow))
	if err != nil {
		return "", "", newRangeError(ErrInvalidRangeFormat, "range", ref, err.Error())
	}
	return r.Columns(), r.Rows(), nil
}

// normalizeArea orders the corners so that R1<=R2 and C1<=C2, as Excel does
// for references like "C10:A1".
func normalizeArea(c1, r1, c2, r2 int) models.Area {
	return models.Area{R1: min(r1, r2), C1: min(c1, c2), R2: max(r1, r2), C2: max(c1, c2)}
}
