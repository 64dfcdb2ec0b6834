package symtab

import (
	"github.com/retrocc/retrocc/diag"
)

// Handle is a stable, encodable identifier for an arena slot. Handle 0 is
// reserved and never valid; a zero handle decoded from a type string means
// the type string was corrupted.
type Handle uint32

// The arenas. Slot 0 stays empty so a zero handle never resolves.
// Compilation is single threaded, so the arenas carry no lock.
var (
	entryArena = []*Entry{nil}
	funcArena  = []*FuncDesc{nil}
)

// Intern stores the entry and returns its handle.
func Intern(e *Entry) Handle {
	if e == nil {
		diag.Fail("symtab.Intern", "nil entry")
	}
	entryArena = append(entryArena, e)
	return Handle(len(entryArena) - 1)
}

// Resolve returns the entry for a handle produced by Intern.
func Resolve(h Handle) *Entry {
	if h == 0 || int(h) >= len(entryArena) {
		diag.FailValue("symtab.Resolve", uint32(h), "invalid entry handle")
	}
	return entryArena[h]
}

// InternFunc stores the function descriptor and returns its handle.
func InternFunc(f *FuncDesc) Handle {
	if f == nil {
		diag.Fail("symtab.InternFunc", "nil function descriptor")
	}
	funcArena = append(funcArena, f)
	return Handle(len(funcArena) - 1)
}

// ResolveFunc returns the descriptor for a handle produced by InternFunc.
func ResolveFunc(h Handle) *FuncDesc {
	if h == 0 || int(h) >= len(funcArena) {
		diag.FailValue("symtab.ResolveFunc", uint32(h), "invalid function handle")
	}
	return funcArena[h]
}
