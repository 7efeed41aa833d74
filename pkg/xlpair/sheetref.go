package xlpair

import (
	"fmt"
	"strconv"
	"strings"
)

// SheetRef identifies a sheet either by name or by its position in the
// workbook's sheet list.
type SheetRef struct {
	name    string
	index   int
	byIndex bool
}

// ByName refers to the sheet with the given name.
func ByName(name string) SheetRef {
	return SheetRef{name: name}
}

// ByIndex refers to the sheet at the given 0-based workbook position.
func ByIndex(index int) SheetRef {
	return SheetRef{index: index, byIndex: true}
}

// ParseSheetRef reads "#N" as ByIndex(N) and anything else as a sheet name.
func ParseSheetRef(s string) SheetRef {
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		if i, err := strconv.Atoi(rest); err == nil {
			return ByIndex(i)
		}
	}
	return ByName(s)
}

// IsIndex reports whether the reference is positional.
func (r SheetRef) IsIndex() bool {
	return r.byIndex
}

func (r SheetRef) String() string {
	if r.byIndex {
		return "#" + strconv.Itoa(r.index)
	}
	return r.name
}

// resolve returns the canonical sheet name. Names are returned unchanged;
// indexes are looked up in sheets.
func (r SheetRef) resolve(sheets []string) (string, error) {
	if !r.byIndex {
		return r.name, nil
	}
	if r.index < 0 || r.index >= len(sheets) {
		return "", fmt.Errorf("%w: index %d (workbook has %d sheets)", ErrSheetNotFoundInWorkbook, r.index, len(sheets))
	}
	return sheets[r.index], nil
}
