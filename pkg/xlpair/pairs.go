package xlpair

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
	"github.com/ukaji3/xlpair-go/pkg/xlpair/parser"
)

// AddDataPair stores a source/target range pair for a sheet, snapshotting
// the values both ranges currently cover. The sheet is added to the schema
// first when missing.
//
// A pair with the same four descriptors is replaced in place
// (OutcomeUpdated) when presentOk is true; otherwise AddDataPair fails with
// ErrDuplicateDataPair. Range errors abort before anything changes.
func (s *Store) AddDataPair(ref SheetRef, srcColumns, srcRows, mtColumns, mtRows string, presentOk bool) (Result, error) {
	sheet, name, err := s.liveSheet(ref, "add_data_pair")
	if err != nil {
		return Result{}, err
	}

	pair := models.NewDataPair(srcColumns, srcRows, mtColumns, mtRows)
	if pair.Src.Values, err = parser.ReadRange(sheet, pair.Src); err != nil {
		return Result{}, NewSheetError(name, "add_data_pair", fmt.Errorf("src: %w", err))
	}
	if pair.Mt.Values, err = parser.ReadRange(sheet, pair.Mt); err != nil {
		return Result{}, NewSheetError(name, "add_data_pair", fmt.Errorf("mt: %w", err))
	}

	_, schemaSheet := s.schema.FindSheet(name)
	if schemaSheet != nil && !presentOk && schemaSheet.IndexOf(pair) >= 0 {
		return Result{}, NewSheetError(name, "add_data_pair", ErrDuplicateDataPair)
	}
	if schemaSheet == nil {
		if _, err := s.applyAddSheet(name, true); err != nil {
			return Result{}, err
		}
		_, schemaSheet = s.schema.FindSheet(name)
	}

	res := Result{SheetID: name}
	if i := schemaSheet.IndexOf(pair); i >= 0 {
		schemaSheet.SheetData[i] = pair
		res.Outcome, res.Index = OutcomeUpdated, i
		s.log.Info("data pair already exists, updated",
			zap.String("sheet", name), zap.Int("index", i))
	} else {
		schemaSheet.SheetData = append(schemaSheet.SheetData, pair)
		res.Outcome, res.Index = OutcomeAdded, len(schemaSheet.SheetData)-1
		s.log.Info("data pair added",
			zap.String("sheet", name), zap.Int("index", res.Index))
	}
	res.Persist = s.persist(false)
	return res, nil
}

// RemoveDataPair removes the data pair at index from a sheet's schema.
func (s *Store) RemoveDataPair(ref SheetRef, index int) (Result, error) {
	if err := s.requireFile(); err != nil {
		return Result{}, err
	}
	name, err := s.resolveSheet(ref)
	if err != nil {
		return Result{}, NewSheetError(ref.String(), "remove_data_pair", err)
	}
	_, sheet := s.schema.FindSheet(name)
	if sheet == nil {
		return Result{}, NewSheetError(name, "remove_data_pair", ErrSheetNotInSchema)
	}
	if index < 0 || index >= len(sheet.SheetData) {
		return Result{}, NewSheetError(name, "remove_data_pair",
			fmt.Errorf("%w: %d (sheet has %d pairs)", ErrIndexOutOfRange, index, len(sheet.SheetData)))
	}
	sheet.SheetData = slices.Delete(sheet.SheetData, index, index+1)
	s.log.Info("data pair removed", zap.String("sheet", name), zap.Int("index", index))

	res := Result{Outcome: OutcomeRemoved, SheetID: name, Index: index}
	res.Persist = s.persist(false)
	return res, nil
}

// ListDataPairs returns copies of a sheet's data pairs.
func (s *Store) ListDataPairs(ref SheetRef) ([]models.DataPair, error) {
	if err := s.requireFile(); err != nil {
		return nil, err
	}
	name, err := s.resolveSheet(ref)
	if err != nil {
		return nil, NewSheetError(ref.String(), "list_data_pairs", err)
	}
	_, sheet := s.schema.FindSheet(name)
	if sheet == nil {
		return nil, NewSheetError(name, "list_data_pairs", ErrSheetNotInSchema)
	}
	pairs := make([]models.DataPair, len(sheet.SheetData))
	for i, p := range sheet.SheetData {
		pairs[i] = p.Clone()
	}
	return pairs, nil
}
