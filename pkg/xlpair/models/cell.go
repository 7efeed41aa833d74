// Package models defines the schema tree persisted for a workbook:
// FileSchema -> SheetSchema -> DataPair -> CellRange.
package models

// CellRange describes one rectangular region of a single sheet by its
// column and row span descriptors.
type CellRange struct {
	// ColumnsRange is the column span (e.g. "A" or "A-C"); nil when unset.
	ColumnsRange *string `json:"columns_range"`
	// RowsRange is the row span (e.g. "5" or "1-10"); nil when unset.
	RowsRange *string `json:"rows_range"`
	// Values is a snapshot of the cell values read when the range was stored,
	// in row-major order. Elements are string, int64, float64, bool or nil.
	Values []any `json:"values"`
}

// NewCellRange returns a CellRange with both descriptors set and no values.
func NewCellRange(columns, rows string) CellRange {
	return CellRange{ColumnsRange: &columns, RowsRange: &rows}
}

// Columns returns the column descriptor, or "" when unset.
func (r CellRange) Columns() string {
	if r.ColumnsRange == nil {
		return ""
	}
	return *r.ColumnsRange
}

// Rows returns the row descriptor, or "" when unset.
func (r CellRange) Rows() string {
	if r.RowsRange == nil {
		return ""
	}
	return *r.RowsRange
}

// IsSet reports whether both descriptors are present and non-empty.
func (r CellRange) IsSet() bool {
	return r.Columns() != "" && r.Rows() != ""
}

// SameRange reports whether r and o have the same descriptors, ignoring values.
func (r CellRange) SameRange(o CellRange) bool {
	return equalOptional(r.ColumnsRange, o.ColumnsRange) && equalOptional(r.RowsRange, o.RowsRange)
}

// Equal reports whether r and o have the same descriptors and cached values.
func (r CellRange) Equal(o CellRange) bool {
	return r.SameRange(o) && equalValues(r.Values, o.Values)
}

// Clone returns a deep copy of r.
func (r CellRange) Clone() CellRange {
	c := CellRange{
		ColumnsRange: cloneOptional(r.ColumnsRange),
		RowsRange:    cloneOptional(r.RowsRange),
	}
	if r.Values != nil {
		c.Values = make([]any, len(r.Values))
		copy(c.Values, r.Values)
	}
	return c
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// equalValues compares two value snapshots. A nil snapshot only equals
// another nil snapshot.
func equalValues(a, b []any) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
