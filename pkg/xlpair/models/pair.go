package models

// DataPair associates a source range with its target/translation range.
type DataPair struct {
	// Src is the source cell range.
	Src CellRange `json:"src"`
	// Mt is the target (translation) cell range.
	Mt CellRange `json:"mt"`
}

// NewDataPair returns a DataPair over the given descriptors.
func NewDataPair(srcColumns, srcRows, mtColumns, mtRows string) DataPair {
	return DataPair{
		Src: NewCellRange(srcColumns, srcRows),
		Mt:  NewCellRange(mtColumns, mtRows),
	}
}

// Equal reports whether both ranges of p and o are equal, cached values included.
func (p DataPair) Equal(o DataPair) bool {
	return p.Src.Equal(o.Src) && p.Mt.Equal(o.Mt)
}

// SameRanges reports whether p and o cover the same source and target
// descriptors, regardless of their cached values.
func (p DataPair) SameRanges(o DataPair) bool {
	return p.Src.SameRange(o.Src) && p.Mt.SameRange(o.Mt)
}

// Clone returns a deep copy of p.
func (p DataPair) Clone() DataPair {
	return DataPair{Src: p.Src.Clone(), Mt: p.Mt.Clone()}
}
