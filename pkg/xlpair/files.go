package xlpair

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileSelector identifies the workbook to bind: either a path, or an entry
// of a directory's Excel file listing chosen by name or by position.
//
// A missing path, an empty listing or an unknown name is ErrFileNotFound;
// an index outside the listing, like any selector that does not name
// exactly one entry, is ErrAmbiguousSelector.
type FileSelector struct {
	Path  string
	Dir   string
	Name  string
	Index *int
}

// ByPath selects the workbook at path.
func ByPath(path string) FileSelector {
	return FileSelector{Path: path}
}

// InDir selects the workbook called name inside dir.
func InDir(dir, name string) FileSelector {
	return FileSelector{Dir: dir, Name: name}
}

// InDirAt selects the index-th workbook of dir's sorted listing.
func InDirAt(dir string, index int) FileSelector {
	return FileSelector{Dir: dir, Index: &index}
}

// ListExcelFiles returns the names of regular files in dir whose extension
// is one of exts (DefaultExtensions when empty), sorted by name.
func ListExcelFiles(dir string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if slices.Contains(exts, strings.ToLower(filepath.Ext(entry.Name()))) {
			files = append(files, entry.Name())
		}
	}
	slices.Sort(files)
	return files, nil
}

// resolve validates the selector and returns the workbook path.
func (s FileSelector) resolve(exts []string) (string, error) {
	switch {
	case s.Path != "":
		if s.Dir != "" || s.Name != "" || s.Index != nil {
			return "", fmt.Errorf("%w: path %q given together with a directory selector", ErrAmbiguousSelector, s.Path)
		}
		info, err := os.Stat(s.Path)
		if err != nil || !info.Mode().IsRegular() {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, s.Path)
		}
		return s.Path, nil
	case s.Dir != "":
		if (s.Name == "") == (s.Index == nil) {
			return "", fmt.Errorf("%w: exactly one of file name or index is required with directory %q", ErrAmbiguousSelector, s.Dir)
		}
		files, err := ListExcelFiles(s.Dir, exts...)
		if err != nil {
			return "", err
		}
		if len(files) == 0 {
			return "", fmt.Errorf("%w: no excel files in directory %s", ErrFileNotFound, s.Dir)
		}
		name := s.Name
		if s.Index != nil {
			if *s.Index < 0 || *s.Index >= len(files) {
				return "", fmt.Errorf("%w: index %d outside the %d excel files of directory %s",
					ErrAmbiguousSelector, *s.Index, len(files), s.Dir)
			}
			name = files[*s.Index]
		} else if !slices.Contains(files, name) {
			return "", fmt.Errorf("%w: %s in directory %s", ErrFileNotFound, name, s.Dir)
		}
		return filepath.Join(s.Dir, name), nil
	default:
		return "", fmt.Errorf("%w: a file path or a directory is required", ErrAmbiguousSelector)
	}
}
