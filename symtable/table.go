package symtable

// Table tracks the two scopes live during compilation of one class: a
// persistent class scope holding Static/Field entries, and a subroutine
// scope holding Arg/Var entries that is cleared at the start of every
// subroutine.
//
// Jack has no nested blocks and no closures, so these two levels are the
// only scopes ever live at once: a two-field struct with an explicit reset
// is simpler than a general scope chain and exactly as capable.
type Table struct {
	class      map[string]Entry
	subroutine map[string]Entry
	classCount map[Kind]int
	subCount   map[Kind]int
}

// New returns an empty table, ready for class-level declarations.
func New() *Table {
	return &Table{
		class:      make(map[string]Entry),
		subroutine: make(map[string]Entry),
		classCount: make(map[Kind]int),
		subCount:   make(map[Kind]int),
	}
}

// StartSubroutine clears all Arg and Var entries, preparing the table for a
// new subroutine. Class-level Static/Field entries are untouched.
func (t *Table) StartSubroutine() {
	t.subroutine = make(map[string]Entry)
	t.subCount = make(map[Kind]int)
}

// scopeFor returns the map and counter set a Kind belongs to.
func (t *Table) scopeFor(k Kind) (map[string]Entry, map[Kind]int) {
	switch k {
	case Static, Field:
		return t.class, t.classCount
	default:
		return t.subroutine, t.subCount
	}
}

// Define adds name to the appropriate scope for kind, assigning it the next
// dense index for that kind. It reports false if name is already defined in
// that scope: within a single scope, every name must be unique.
func (t *Table) Define(name, typ string, kind Kind) bool {
	scope, counts := t.scopeFor(kind)
	if _, exists := scope[name]; exists {
		return false
	}
	idx := counts[kind]
	scope[name] = Entry{Name: name, Type: typ, Kind: kind, Index: idx}
	counts[kind] = idx + 1
	return true
}

// Count returns the number of entries of the given kind defined so far, in
// whichever scope that kind lives in. Used to size VM frames (local count)
// and heap objects (field count).
func (t *Table) Count(kind Kind) int {
	_, counts := t.scopeFor(kind)
	return counts[kind]
}

// Lookup resolves name, trying the subroutine scope before the class scope,
// so a parameter or local shadows a field or static of the same name. The
// bool is false if name is not a variable in either scope — meaning it is a
// class name or subroutine name in context, not a symbol-table entry.
func (t *Table) Lookup(name string) (Entry, bool) {
	if e, ok := t.subroutine[name]; ok {
		return e, true
	}
	e, ok := t.class[name]
	return e, ok
}
