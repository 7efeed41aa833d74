package xlpair

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/document"
	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
)

// Store owns the schema of one bound workbook together with the open
// workbook itself. Both are always replaced together.
//
// A Store is not safe for concurrent use.
type Store struct {
	opts Options
	log  *zap.Logger

	schema       *models.FileSchema
	wb           Workbook
	autosavePath string

	autosave        bool
	pendingAutoload bool
}

// New creates a Store with no bound file and creates the autosave directory.
func New(opts Options) (*Store, error) {
	opts = opts.withDefaults()
	if err := os.MkdirAll(opts.AutosaveDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create autosave directory: %w", err)
	}
	return &Store{
		opts:            opts,
		log:             opts.Logger,
		autosave:        opts.ShouldAutosave(),
		pendingAutoload: opts.Autoload,
	}, nil
}

// Open creates a Store bound to the workbook at path.
func Open(path string, opts Options) (*Store, error) {
	s, err := New(opts)
	if err != nil {
		return nil, err
	}
	if err := s.SelectFile(ByPath(path), nil); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectFile binds the store to the selected workbook with a fresh schema.
//
// autoload decides whether the autosave document of the file is loaded:
// true loads it and turns autosave on, false turns autosave off, and nil
// defers to the Options.Autoload flag the first time and leaves autosave
// as it is afterwards.
func (s *Store) SelectFile(sel FileSelector, autoload *bool) error {
	path, err := sel.resolve(s.opts.Extensions)
	if err != nil {
		return err
	}
	wb, err := s.opts.OpenWorkbook(path)
	if err != nil {
		return err
	}

	doAutoload := false
	switch {
	case autoload != nil && *autoload, autoload == nil && s.pendingAutoload:
		s.pendingAutoload = false
		s.autosave = true
		doAutoload = true
	case autoload != nil && !*autoload:
		s.pendingAutoload = false
		s.autosave = false
	}

	s.bind(models.NewFileSchema(path), wb)
	s.log.Info("excel file loaded", zap.String("path", path))

	if doAutoload {
		s.autoload()
	}
	return nil
}

// bind swaps in a schema and its workbook, closing the previous workbook.
func (s *Store) bind(fs *models.FileSchema, wb Workbook) {
	old := s.wb
	s.schema, s.wb = fs, wb
	s.autosavePath = autosavePathFor(s.opts.AutosaveDir, fs.FilePath)
	if old != nil {
		if err := old.Close(); err != nil {
			s.log.Warn("failed to close previous workbook", zap.String("path", old.Path()), zap.Error(err))
		}
	}
}

// Close releases the bound workbook. The store has no file selected afterwards.
func (s *Store) Close() error {
	if s.wb == nil {
		return nil
	}
	err := s.wb.Close()
	s.schema, s.wb, s.autosavePath = nil, nil, ""
	return err
}

// FilePath returns the bound workbook path, or "" when no file is selected.
func (s *Store) FilePath() string {
	if s.schema == nil {
		return ""
	}
	return s.schema.FilePath
}

// Schema returns a copy of the current schema.
func (s *Store) Schema() (models.FileSchema, error) {
	if err := s.requireFile(); err != nil {
		return models.FileSchema{}, err
	}
	return *s.schema.Clone(), nil
}

// ListExcelFiles lists the Excel files of dir using the store's extensions.
func (s *Store) ListExcelFiles(dir string) ([]string, error) {
	return ListExcelFiles(dir, s.opts.Extensions...)
}

// ListFileSheets returns the sheet names of the bound workbook.
func (s *Store) ListFileSheets() ([]string, error) {
	if err := s.requireFile(); err != nil {
		return nil, err
	}
	return slices.Clone(s.wb.SheetNames()), nil
}

func (s *Store) requireFile() error {
	if s.schema == nil || s.wb == nil {
		return ErrNoFileSelected
	}
	return nil
}

// resolveSheet turns ref into a canonical sheet name.
func (s *Store) resolveSheet(ref SheetRef) (string, error) {
	return ref.resolve(s.wb.SheetNames())
}

func (s *Store) inWorkbook(name string) bool {
	return slices.Contains(s.wb.SheetNames(), name)
}

// persist runs the best-effort persist phase of a mutation.
func (s *Store) persist(saveWorkbook bool) PersistReport {
	var rep PersistReport
	if saveWorkbook {
		path := s.schema.FilePath
		if err := s.wb.SaveAs(path); err != nil {
			rep.Workbook = fmt.Errorf("%w: %s: %v", ErrWorkbookPersistFailure, path, err)
			s.log.Warn("failed to save workbook", zap.String("path", path), zap.Error(err))
		}
	}
	rep.AutosavePath, rep.Autosave = s.autosaveNow()
	return rep
}

func autosavePathFor(dir, path string) string {
	base := filepath.Base(path)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+"_autosave.json")
}

func sameFile(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// autoload replaces the fresh schema with the autosave document, if any.
// The selected file stays bound even when the document names another one.
func (s *Store) autoload() {
	fs, err := document.ReadFile(s.autosavePath)
	if errors.Is(err, document.ErrDocumentNotFound) {
		s.log.Info("no autosave file found to autoload", zap.String("path", s.autosavePath))
		return
	}
	if err != nil {
		s.log.Warn("failed to autoload configuration", zap.String("path", s.autosavePath), zap.Error(err))
		return
	}
	mismatch := !sameFile(fs.FilePath, s.schema.FilePath)
	if mismatch {
		s.log.Warn("autosave document refers to a different file, keeping the selected file",
			zap.String("document_file", fs.FilePath),
			zap.String("selected_file", s.schema.FilePath))
	}
	fs.FilePath = s.schema.FilePath
	s.schema = fs
	s.log.Info("configuration autoloaded", zap.String("path", s.autosavePath))
	if mismatch {
		s.autosaveNow()
	}
}
