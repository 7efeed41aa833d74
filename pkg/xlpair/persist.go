package xlpair

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/document"
)

// ToDocument returns the schema encoded as a JSON document.
func (s *Store) ToDocument() ([]byte, error) {
	if err := s.requireFile(); err != nil {
		return nil, err
	}
	return document.Encode(s.schema)
}

// SaveDocument writes the schema document to path. An empty path means the
// bound workbook path with its extension replaced by ".json".
//
// A failed write leaves the store untouched.
func (s *Store) SaveDocument(path string) (Result, error) {
	if err := s.requireFile(); err != nil {
		return Result{}, err
	}
	if path == "" {
		path = strings.TrimSuffix(s.schema.FilePath, filepath.Ext(s.schema.FilePath)) + ".json"
	}
	if err := document.WriteFile(path, s.schema); err != nil {
		s.log.Warn("failed to save configuration", zap.String("path", path), zap.Error(err))
		return Result{}, err
	}
	s.log.Info("configuration saved", zap.String("path", path))

	res := Result{Outcome: OutcomeSaved, Path: path}
	res.Persist = s.persist(false)
	return res, nil
}

// LoadDocument replaces the schema with the document at path and binds the
// workbook the document names. Nothing changes when either cannot be read.
func (s *Store) LoadDocument(path string) (Result, error) {
	fs, err := document.ReadFile(path)
	if err != nil {
		s.log.Warn("failed to load configuration", zap.String("path", path), zap.Error(err))
		return Result{}, err
	}
	wb, err := s.opts.OpenWorkbook(fs.FilePath)
	if err != nil {
		s.log.Warn("failed to open workbook named by configuration",
			zap.String("path", path), zap.String("file", fs.FilePath), zap.Error(err))
		return Result{}, err
	}
	s.bind(fs, wb)
	s.log.Info("configuration loaded", zap.String("path", path), zap.String("file", fs.FilePath))

	res := Result{Outcome: OutcomeLoaded, Path: path}
	res.Persist = s.persist(false)
	return res, nil
}

// EnableAutosave turns autosave on and writes the autosave document at once.
func (s *Store) EnableAutosave() error {
	if err := s.requireFile(); err != nil {
		return err
	}
	s.autosave = true
	_, err := s.autosaveNow()
	return err
}

// DisableAutosave turns autosave off.
func (s *Store) DisableAutosave() {
	s.autosave = false
}

// AutosaveEnabled reports whether mutations write the autosave document.
func (s *Store) AutosaveEnabled() bool {
	return s.autosave
}

// AutosavePath returns the autosave document of the bound workbook, or ""
// when no file is selected.
func (s *Store) AutosavePath() string {
	return s.autosavePath
}

// autosaveNow writes the autosave document when autosave is on. It returns
// the path written, or "" when nothing was due.
func (s *Store) autosaveNow() (string, error) {
	if !s.autosave || s.schema == nil {
		return "", nil
	}
	if err := document.WriteFile(s.autosavePath, s.schema); err != nil {
		err = fmt.Errorf("%w: %w", ErrAutosaveFailure, err)
		s.log.Warn("autosave failed", zap.String("path", s.autosavePath), zap.Error(err))
		return "", err
	}
	s.log.Debug("configuration autosaved", zap.String("path", s.autosavePath))
	return s.autosavePath, nil
}
