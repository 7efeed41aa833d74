package parser

import (
	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
)

// Sheet is a read-only view of one worksheet.
type Sheet interface {
	// CellValue returns the value stored at the 1-based column and row,
	// or nil for an empty cell.
	CellValue(col, row int) (any, error)
}

// ReadRange reads the values covered by r in row-major order: rows top to
// bottom, and within each row columns left to right. Two ranges of the same
// shape read this way correspond position by position.
func ReadRange(sheet Sheet, r models.CellRange) ([]any, error) {
	area, err := ResolveRange(r)
	if err != nil {
		return nil, err
	}
	var values []any
	for row := area.R1; row <= area.R2; row++ {
		for col := area.C1; col <= area.C2; col++ {
			v, err := sheet.CellValue(col, row)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}
