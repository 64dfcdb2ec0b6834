// Package types implements the type-string algebra of the compiler.
//
// It provides four groups of operations over retrocc.Type values:
//
//   - Codec: packing 32-bit values (array lengths, symbol-table handles)
//     into the fixed auxiliary token slots that follow certain tags.
//   - Construction: length and copy primitives, heap duplication with a
//     recycling pool, and the derived-type builders PointerTo, CharArray,
//     ArrayToPointer and ImplicitFuncType.
//   - Introspection: SizeOf and its checked variants, the code-generator
//     classification, one-level indirection, and the class, sign and
//     qualifier predicates.
//   - Rendering: readable type names, full function signatures, and the raw
//     hex dump used in diagnostics.
//
// Construction returns owned type strings that the caller releases with
// Free once discarded. The predefined singletons (TypeInt, TypeVoid, ...)
// are shared and must not be freed. Introspection never allocates: Indirect,
// ElementType and FuncReturn return views into the argument.
//
// Calling an operation on a type of the wrong class is an internal fault
// and panics via the diag package. User-level problems (sizeof an
// incomplete type, classifying void) are reported to diag.Default() and
// recovered with a safe substitute.
package types
