/*
File    : jackc/symtable/symbol.go

Package symtable implements the two-level symbol table a Jack class needs:
a persistent class scope (Static, Field) and a mutable subroutine scope
(Arg, Var), reset at the start of each subroutine.
*/
package symtable

// Kind is the symbol-table category of a variable.
type Kind string

const (
	Static Kind = "static"
	Field  Kind = "field"
	Arg    Kind = "arg"
	Var    Kind = "var"
)

// Segment is the VM memory segment a Kind is pushed/popped through. It is a
// plain string alias so it drops straight into vmwriter.Writer.Push/Pop
// without conversion.
type Segment = string

const (
	SegArgument Segment = "argument"
	SegLocal    Segment = "local"
	SegStatic   Segment = "static"
	SegThis     Segment = "this"
)

// SegmentOf returns the VM segment a symbol of the given Kind lives in.
func SegmentOf(k Kind) Segment {
	switch k {
	case Static:
		return SegStatic
	case Field:
		return SegThis
	case Arg:
		return SegArgument
	case Var:
		return SegLocal
	default:
		panic("symtable: unknown kind " + string(k))
	}
}

// Entry is one symbol-table row: a name bound to a declared type, a kind,
// and a dense, zero-based, per-kind index assigned in definition order.
type Entry struct {
	Name  string
	Type  string
	Kind  Kind
	Index int
}
