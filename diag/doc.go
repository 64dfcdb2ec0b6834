// Package diag carries the compiler's two diagnostic tiers.
//
// User-diagnosable errors (an incomplete type where a size is needed, a type
// with no code-generator classification) are structured Error values reported
// through a Reporter. Compilation continues after them; the querying code
// substitutes a safe fallback so later phases never see a zero size or a
// missing classification.
//
// Internal faults are compiler-invariant violations: an operation applied to
// a type of the wrong class, or an unknown tag reaching size computation.
// They abort immediately via panic with an *InternalError payload; nothing
// recovers them inside this repository.
//
// Both tiers are logged through the package logger, a no-op zap.Logger until
// SetLogger installs a real one.
package diag
