package symtab

import (
	"github.com/retrocc/retrocc"
)

// EntryFlags carry the storage-class bits the type core cares about.
type EntryFlags uint16

const (
	FlagNone   EntryFlags = 0
	FlagRegVar EntryFlags = 1 << iota // parameter lives in a register
	FlagDef                           // entry is a definition, not a declaration
)

// Entry is one symbol-table entry. The type core reads Name, Size and Type
// and follows NextSym when iterating a parameter list; it never mutates an
// entry.
type Entry struct {
	NextSym *Entry
	Name    string
	Type    retrocc.Type
	Size    uint32 // aggregate byte size for struct/union entries
	Flags   EntryFlags
}

// IsRegVar reports whether the entry is a register variable.
func (e *Entry) IsRegVar() bool {
	return e.Flags&FlagRegVar != 0
}

// Table is a linked symbol table. Function descriptors reference one table
// for parameters and one for struct/union tags declared in the parameter
// list.
type Table struct {
	SymHead *Entry
	SymTail *Entry
	Count   uint32
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{}
}

// Add appends an entry, maintaining the NextSym chain.
func (t *Table) Add(e *Entry) {
	if t.SymTail == nil {
		t.SymHead = e
	} else {
		t.SymTail.NextSym = e
	}
	t.SymTail = e
	t.Count++
}

// EmptyTable is the shared table used where a function has no parameters to
// describe. It must never be added to.
var EmptyTable = NewTable()
