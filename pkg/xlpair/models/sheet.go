package models

// SheetSchema holds the data pairs defined for a single sheet.
type SheetSchema struct {
	// SheetID is the workbook sheet name; nil when unset.
	SheetID *string `json:"sheet_id"`
	// SheetData contains the data pairs in insertion order.
	SheetData []DataPair `json:"sheet_data"`
}

// NewSheetSchema returns an empty SheetSchema for the named sheet.
func NewSheetSchema(id string) SheetSchema {
	return SheetSchema{SheetID: &id, SheetData: []DataPair{}}
}

// ID returns the sheet id, or "" when unset.
func (s SheetSchema) ID() string {
	if s.SheetID == nil {
		return ""
	}
	return *s.SheetID
}

// IndexOf returns the index of the first pair covering the same ranges as p, or -1.
func (s SheetSchema) IndexOf(p DataPair) int {
	for i, existing := range s.SheetData {
		if existing.SameRanges(p) {
			return i
		}
	}
	return -1
}

// Equal reports whether s and o have the same id and equal pairs in the same order.
func (s SheetSchema) Equal(o SheetSchema) bool {
	if !equalOptional(s.SheetID, o.SheetID) || len(s.SheetData) != len(o.SheetData) {
		return false
	}
	for i := range s.SheetData {
		if !s.SheetData[i].Equal(o.SheetData[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of s.
func (s SheetSchema) Clone() SheetSchema {
	c := SheetSchema{SheetID: cloneOptional(s.SheetID)}
	if s.SheetData != nil {
		c.SheetData = make([]DataPair, len(s.SheetData))
		for i, p := range s.SheetData {
			c.SheetData[i] = p.Clone()
		}
	}
	return c
}
