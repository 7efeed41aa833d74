package parser

import (
	"strconv"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
	"github.com/xuri/excelize/v2"
)

// DetectUsedArea returns the smallest area holding every non-empty cell of
// rows, as returned by excelize.File.GetRows. ok is false when all cells are empty.
func DetectUsedArea(rows [][]string) (area models.Area, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Area{}, false
	}
	return models.Area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// AreaToRange converts resolved bounds back to column and row descriptors.
// Single-column and single-row spans are written without a separator.
func AreaToRange(a models.Area) (models.CellRange, error) {
	c1, err := excelize.ColumnNumberToName(a.C1)
	if err != nil {
		return models.CellRange{}, err
	}
	c2, err := excelize.ColumnNumberToName(a.C2)
	if err != nil {
		return models.CellRange{}, err
	}
	return models.NewCellRange(span(c1, c2), span(strconv.Itoa(a.R1), strconv.Itoa(a.R2))), nil
}

func span(start, end string) string {
	if start == end {
		return start
	}
	return start + rangeSeparator + end
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
