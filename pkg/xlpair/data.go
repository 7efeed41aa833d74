package xlpair

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
	"github.com/ukaji3/xlpair-go/pkg/xlpair/parser"
)

// PairData holds the live values of a data pair's two ranges.
type PairData struct {
	Src []any `json:"src"`
	Mt  []any `json:"mt"`
}

// AllData holds the live values of every readable data pair, keyed by sheet.
type AllData struct {
	Sheets map[string][]PairData `json:"sheets"`
	// Skipped records why a sheet or pair was left out.
	Skipped []error `json:"-"`
}

// PreviewRange reads the values a range currently covers without storing anything.
func (s *Store) PreviewRange(ref SheetRef, columns, rows string) ([]any, error) {
	sheet, name, err := s.liveSheet(ref, "preview_range")
	if err != nil {
		return nil, err
	}
	values, err := parser.ReadRange(sheet, models.NewCellRange(columns, rows))
	if err != nil {
		return nil, NewSheetError(name, "preview_range", err)
	}
	return values, nil
}

// GetData reads the live values of a source and target range of a sheet
// recorded in the schema.
func (s *Store) GetData(ref SheetRef, src, mt models.CellRange) (PairData, error) {
	sheet, name, err := s.liveSheet(ref, "get_data")
	if err != nil {
		return PairData{}, err
	}
	if _, schemaSheet := s.schema.FindSheet(name); schemaSheet == nil {
		return PairData{}, NewSheetError(name, "get_data", ErrSheetNotInSchema)
	}
	data, err := readPair(sheet, src, mt)
	if err != nil {
		return PairData{}, NewSheetError(name, "get_data", err)
	}
	return data, nil
}

// GetAllData reads the live values of every data pair in the schema.
// Sheets without an id or missing from the workbook, and pairs that cannot
// be read, are skipped and recorded in AllData.Skipped.
func (s *Store) GetAllData() (AllData, error) {
	if err := s.requireFile(); err != nil {
		return AllData{}, err
	}
	all := AllData{Sheets: make(map[string][]PairData)}
	for i, schemaSheet := range s.schema.FileData {
		if schemaSheet.SheetID == nil {
			err := fmt.Errorf("%w: schema sheet %d has no id", ErrSheetNotInSchema, i)
			s.log.Warn("skipping sheet without id", zap.Int("index", i))
			all.Skipped = append(all.Skipped, err)
			continue
		}
		name := schemaSheet.ID()
		sheet, ok := s.wb.Sheet(name)
		if !ok {
			s.log.Warn("skipping sheet missing from workbook", zap.String("sheet", name))
			all.Skipped = append(all.Skipped, NewSheetError(name, "get_all_data", ErrSheetNotFoundInWorkbook))
			continue
		}
		pairs := make([]PairData, 0, len(schemaSheet.SheetData))
		for j, pair := range schemaSheet.SheetData {
			data, err := readPair(sheet, pair.Src, pair.Mt)
			if err != nil {
				s.log.Warn("skipping unreadable data pair",
					zap.String("sheet", name), zap.Int("index", j), zap.Error(err))
				all.Skipped = append(all.Skipped, NewSheetError(name, "get_all_data", fmt.Errorf("pair %d: %w", j, err)))
				continue
			}
			pairs = append(pairs, data)
		}
		all.Sheets[name] = append(all.Sheets[name], pairs...)
	}
	return all, nil
}

// UpdateCell writes value to a cell and saves the workbook. A failed save is
// reported in Result.Persist; the written value stays in the open workbook.
func (s *Store) UpdateCell(ref SheetRef, cell string, value any) (Result, error) {
	_, name, err := s.liveSheet(ref, "update_cell")
	if err != nil {
		return Result{}, err
	}
	if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
		return Result{}, NewSheetError(name, "update_cell", fmt.Errorf("%w: %q", ErrInvalidCellAddress, cell))
	}
	if err := s.wb.SetCellValue(name, cell, value); err != nil {
		return Result{}, NewSheetError(name, "update_cell", err)
	}
	s.log.Info("cell updated", zap.String("sheet", name), zap.String("cell", cell))

	res := Result{Outcome: OutcomeWritten, SheetID: name}
	res.Persist = s.persist(true)
	return res, nil
}

// UsedRange returns the smallest range holding every non-empty cell of a sheet.
func (s *Store) UsedRange(ref SheetRef) (models.CellRange, error) {
	_, name, err := s.liveSheet(ref, "used_range")
	if err != nil {
		return models.CellRange{}, err
	}
	rows, err := s.wb.Rows(name)
	if err != nil {
		return models.CellRange{}, NewSheetError(name, "used_range", err)
	}
	area, ok := parser.DetectUsedArea(rows)
	if !ok {
		return models.CellRange{}, NewSheetError(name, "used_range",
			fmt.Errorf("%w: sheet has no data", ErrIncompleteRange))
	}
	r, err := parser.AreaToRange(area)
	if err != nil {
		return models.CellRange{}, NewSheetError(name, "used_range", err)
	}
	return r, nil
}

// liveSheet resolves ref against the bound workbook.
func (s *Store) liveSheet(ref SheetRef, op string) (parser.Sheet, string, error) {
	if err := s.requireFile(); err != nil {
		return nil, "", err
	}
	name, err := s.resolveSheet(ref)
	if err != nil {
		return nil, "", NewSheetError(ref.String(), op, err)
	}
	sheet, ok := s.wb.Sheet(name)
	if !ok {
		return nil, "", NewSheetError(name, op, ErrSheetNotFoundInWorkbook)
	}
	return sheet, name, nil
}

func readPair(sheet parser.Sheet, src, mt models.CellRange) (PairData, error) {
	srcValues, err := parser.ReadRange(sheet, src)
	if err != nil {
		return PairData{}, fmt.Errorf("src: %w", err)
	}
	mtValues, err := parser.ReadRange(sheet, mt)
	if err != nil {
		return PairData{}, fmt.Errorf("mt: %w", err)
	}
	return PairData{Src: srcValues, Mt: mtValues}, nil
}
