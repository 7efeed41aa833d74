package models

// FileSchema is the root of the schema tree for one workbook file.
type FileSchema struct {
	// FilePath is the path of the workbook the schema describes.
	FilePath string `json:"file_path"`
	// FileData contains the per-sheet schemas in insertion order.
	FileData []SheetSchema `json:"file_data"`
}

// NewFileSchema returns an empty schema bound to path.
func NewFileSchema(path string) *FileSchema {
	return &FileSchema{FilePath: path, FileData: []SheetSchema{}}
}

// FindSheet returns the index of the first sheet schema with the given id
// and a pointer to it, or -1 and nil.
func (f *FileSchema) FindSheet(id string) (int, *SheetSchema) {
	for i := range f.FileData {
		if f.FileData[i].SheetID != nil && *f.FileData[i].SheetID == id {
			return i, &f.FileData[i]
		}
	}
	return -1, nil
}

// SheetIDs returns the non-empty sheet ids in schema order.
func (f *FileSchema) SheetIDs() []string {
	ids := make([]string, 0, len(f.FileData))
	for _, s := range f.FileData {
		if id := s.ID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Equal reports whether f and o describe the same file with equal sheets in the same order.
func (f *FileSchema) Equal(o *FileSchema) bool {
	if f == nil || o == nil {
		return f == o
	}
	if f.FilePath != o.FilePath || len(f.FileData) != len(o.FileData) {
		return false
	}
	for i := range f.FileData {
		if !f.FileData[i].Equal(o.FileData[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of f.
func (f *FileSchema) Clone() *FileSchema {
	if f == nil {
		return nil
	}
	c := &FileSchema{FilePath: f.FilePath}
	if f.FileData != nil {
		c.FileData = make([]SheetSchema, len(f.FileData))
		for i, s := range f.FileData {
			c.FileData[i] = s.Clone()
		}
	}
	return c
}
