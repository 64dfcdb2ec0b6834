// Package symtab owns the symbol-table entries and function descriptors that
// type strings reference.
//
// A type string never stores a Go pointer. Aggregate and function tags are
// followed by a Handle: an index into an arena owned by this package. The
// type string borrows the entry; the arena keeps it alive for the whole
// compilation, so a handle decoded out of a type string is always valid.
//
//	h := symtab.Intern(entry)     // when the tag is declared
//	...encode h after the struct/union tag...
//	e := symtab.Resolve(h)        // when the type is inspected
//
// Resolving a handle that was never interned is an internal fault.
package symtab
