package xlpair

import "errors"

// Outcome is what the apply phase of a mutation did.
type Outcome int

const (
	// OutcomeAdded means a new sheet or data pair was appended.
	OutcomeAdded Outcome = iota
	// OutcomeUpdated means an existing data pair was replaced.
	OutcomeUpdated
	// OutcomeAlreadyPresent means nothing changed because the sheet already existed.
	OutcomeAlreadyPresent
	// OutcomeRemoved means a sheet or data pair was removed.
	OutcomeRemoved
	// OutcomeWritten means a cell value was written.
	OutcomeWritten
	// OutcomeSaved means the schema document was written.
	OutcomeSaved
	// OutcomeLoaded means a schema document replaced the current schema.
	OutcomeLoaded
)

func (o Outcome) String() string {
	names := []string{"added", "updated", "already_present", "removed", "written", "saved", "loaded"}
	if int(o) >= 0 && int(o) < len(names) {
		return names[o]
	}
	return "unknown"
}

// PersistReport is the outcome of the best-effort persist phase that
// follows an applied mutation. Its errors never undo the mutation.
type PersistReport struct {
	// Workbook is set when writing the workbook to disk failed.
	Workbook error
	// Autosave is set when writing the autosave document failed.
	Autosave error
	// AutosavePath is the document written, or "" when autosave is off.
	AutosavePath string
}

// Err returns the persist failures joined, or nil.
func (p PersistReport) Err() error {
	return errors.Join(p.Workbook, p.Autosave)
}

// Result describes a successful mutation.
type Result struct {
	Outcome Outcome
	// SheetID is the canonical sheet name the mutation touched.
	SheetID string
	// Index is the data pair position for data pair mutations.
	Index int
	// Path is the document or workbook path for save and load.
	Path    string
	Persist PersistReport
}
