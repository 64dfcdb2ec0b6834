// Package retrocc provides the shared type vocabulary of a small C compiler
// targeting 8-bit platforms.
//
// A C type is represented as a "type string": a flat, sentinel-terminated
// sequence of 16-bit tokens. Each token packs a base type, a class grouping,
// signedness and qualifiers into disjoint bit fields. Tokens for arrays,
// functions and aggregates are followed by a fixed-width auxiliary payload
// (an element count or a symbol-table handle) whose slots are marked with a
// reserved high bit so they can never be mistaken for type tags.
//
// # Architecture Overview
//
// The repository is organized into packages with distinct responsibilities:
//
//	retrocc/        Root package with the token bit layout and target sizes
//	├── types/      Type string construction, introspection and rendering
//	├── symtab/     Symbol-table arena: entries, function descriptors, handles
//	├── diag/       Two-tier diagnostics (user errors, internal faults)
//	└── cmd/        typedump inspection tool with interactive TUI
//
// # Type Strings
//
// Type strings read outer-to-inner. A few examples:
//
//	int            {TInt, TEnd}
//	const char*    {TPtr, TSChar | QualConst, TEnd}
//	int[10]        {TArray, <count:3>, TInt, TEnd}
//	int (*)(...)   {TPtr, TFunc, <handle:3>, TInt, TEnd}
//
// <x:3> denotes the three auxiliary token slots that encode a 32-bit value
// in 15-bit chunks with the AuxData marker bit set.
//
// # Ownership
//
// Type strings built by the types package are owned by their caller and may
// be recycled through types.Free. The predefined singletons (types.TypeInt,
// types.TypeVoid, ...) are shared constants and must never be freed. Handles
// embedded in a type string borrow symbol-table entries; the arena in symtab
// owns them.
package retrocc
