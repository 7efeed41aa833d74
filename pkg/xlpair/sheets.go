package xlpair

import (
	"slices"

	"go.uber.org/zap"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
)

// AddSheet adds an empty schema entry for a workbook sheet.
//
// When the sheet is already in the schema, AddSheet reports
// OutcomeAlreadyPresent if presentOk is true and fails with
// ErrDuplicateSheet otherwise.
func (s *Store) AddSheet(ref SheetRef, presentOk bool) (Result, error) {
	if err := s.requireFile(); err != nil {
		return Result{}, err
	}
	name, err := s.resolveSheet(ref)
	if err != nil {
		return Result{}, NewSheetError(ref.String(), "add_sheet", err)
	}
	res, err := s.applyAddSheet(name, presentOk)
	if err != nil || res.Outcome == OutcomeAlreadyPresent {
		return res, err
	}
	res.Persist = s.persist(false)
	return res, nil
}

func (s *Store) applyAddSheet(name string, presentOk bool) (Result, error) {
	if _, sheet := s.schema.FindSheet(name); sheet != nil {
		if !presentOk {
			return Result{}, NewSheetError(name, "add_sheet", ErrDuplicateSheet)
		}
		s.log.Info("sheet already exists in the schema", zap.String("sheet", name))
		return Result{Outcome: OutcomeAlreadyPresent, SheetID: name}, nil
	}
	if !s.inWorkbook(name) {
		return Result{}, NewSheetError(name, "add_sheet", ErrSheetNotFoundInWorkbook)
	}
	s.schema.FileData = append(s.schema.FileData, models.NewSheetSchema(name))
	s.log.Info("sheet added to schema", zap.String("sheet", name))
	return Result{Outcome: OutcomeAdded, SheetID: name, Index: len(s.schema.FileData) - 1}, nil
}

// RemoveSheet removes a sheet from the schema and deletes it from the
// workbook, then writes the workbook back to disk. A failed write is
// reported in Result.Persist; the removal stands.
func (s *Store) RemoveSheet(ref SheetRef) (Result, error) {
	if err := s.requireFile(); err != nil {
		return Result{}, err
	}
	name, err := s.resolveSheet(ref)
	if err != nil {
		return Result{}, NewSheetError(ref.String(), "remove_sheet", err)
	}
	idx, sheet := s.schema.FindSheet(name)
	if sheet == nil {
		return Result{}, NewSheetError(name, "remove_sheet", ErrSheetNotInSchema)
	}
	if !s.inWorkbook(name) {
		return Result{}, NewSheetError(name, "remove_sheet", ErrSheetNotFoundInWorkbook)
	}
	if len(s.wb.SheetNames()) == 1 {
		return Result{}, NewSheetError(name, "remove_sheet", ErrLastSheet)
	}
	if err := s.wb.DeleteSheet(name); err != nil {
		return Result{}, NewSheetError(name, "remove_sheet", err)
	}
	s.schema.FileData = slices.Delete(s.schema.FileData, idx, idx+1)
	s.log.Info("sheet removed from schema and workbook", zap.String("sheet", name))

	res := Result{Outcome: OutcomeRemoved, SheetID: name, Index: idx}
	res.Persist = s.persist(true)
	return res, nil
}

// ListSheets returns the ids of the sheets in the schema, in schema order.
func (s *Store) ListSheets() ([]string, error) {
	if err := s.requireFile(); err != nil {
		return nil, err
	}
	return s.schema.SheetIDs(), nil
}
