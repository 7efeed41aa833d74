// Package xlpair maps source and target cell ranges of Excel sheets into a
// persisted schema and extracts the values those ranges cover.
package xlpair

import (
	"go.uber.org/zap"
)

// DefaultAutosaveDir is where autosave documents are written unless configured otherwise.
const DefaultAutosaveDir = "./autosaves"

// DefaultExtensions are the file extensions listed as Excel workbooks.
var DefaultExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// Options configures a Store.
type Options struct {
	// AutosaveDir is the directory for autosave documents. It is created by New.
	// Defaults to DefaultAutosaveDir.
	AutosaveDir string
	// Autoload requests loading the autosave document on the next file
	// selection that does not decide for itself. It also enables autosave.
	Autoload bool
	// Autosave enables autosave from construction on.
	// If nil, autosave stays off until a selection with autoload turns it on.
	Autosave *bool
	// Extensions filters directory listings. Defaults to DefaultExtensions.
	Extensions []string
	// Logger receives informational and warning output. Defaults to a no-op logger.
	Logger *zap.Logger
	// OpenWorkbook opens the workbook at path. Defaults to OpenWorkbook.
	OpenWorkbook func(path string) (Workbook, error)
}

// DefaultOptions returns default store options.
func DefaultOptions() Options {
	return Options{
		AutosaveDir: DefaultAutosaveDir,
	}
}

// ShouldAutosave returns whether autosave starts enabled.
func (o Options) ShouldAutosave() bool {
	if o.Autosave != nil {
		return *o.Autosave
	}
	return false
}

func (o Options) withDefaults() Options {
	if o.AutosaveDir == "" {
		o.AutosaveDir = DefaultAutosaveDir
	}
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.OpenWorkbook == nil {
		o.OpenWorkbook = OpenWorkbook
	}
	return o
}
