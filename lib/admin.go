package rcs

import "fmt"

// ExpandMode is the keyword-expansion mode declared by the archive's
// expand field.
type ExpandMode string

const (
	ExpandDefault ExpandMode = "" // no expand field: same behavior as kv
	ExpandKV      ExpandMode = "kv"
	ExpandKVL     ExpandMode = "kvl"
	ExpandK       ExpandMode = "k"
	ExpandV       ExpandMode = "v"
	ExpandO       ExpandMode = "o"
	ExpandB       ExpandMode = "b"
)

var expandModes = map[string]ExpandMode{
	"kv": ExpandKV, "kvl": ExpandKVL, "k": ExpandK,
	"v": ExpandV, "o": ExpandO, "b": ExpandB,
}

// ParseExpandMode validates an expand field value.
func ParseExpandMode(s string) (ExpandMode, error) {
	if mode, ok := expandModes[s]; ok {
		return mode, nil
	}
	return ExpandDefault, fmt.Errorf("invalid expand mode: %q", s)
}

// Symbol maps a symbolic name to a revision or branch number.
type Symbol struct {
	Name string
	Rev  RevNum
}

// Lock records that a user holds the lock on a revision.
type Lock struct {
	Owner string
	Rev   RevNum
}

// Admin is the administrative header of an archive: the head revision,
// the optional default branch, and the access/symbols/locks tables, all
// preserved in file order.
type Admin struct {
	Head      RevNum // nil for an empty archive
	Branch    RevNum // default branch, nil when unset
	Access    []string
	Symbols   []Symbol
	Locks     []Lock
	Strict    bool
	Integrity string
	Comment   string
	Expand    ExpandMode
	Phrases   Phrases
}

// SymbolRev resolves a symbolic name to its revision or branch number.
func (a *Admin) SymbolRev(name string) (RevNum, bool) {
	idx := IndexFunc(a.Symbols, func(s Symbol) bool { return s.Name == name })
	if idx == -1 {
		return nil, false
	}
	return a.Symbols[idx].Rev, true
}

// LockedBy returns the owner of the lock on the given revision, if any.
func (a *Admin) LockedBy(rev RevNum) (string, bool) {
	idx := IndexFunc(a.Locks, func(l Lock) bool { return l.Rev.Equal(rev) })
	if idx == -1 {
		return "", false
	}
	return a.Locks[idx].Owner, true
}
