package diag

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Phase indicates which operation produced the diagnostic.
type Phase string

const (
	PhaseConstruct Phase = "construct" // building a type string
	PhaseSize      Phase = "size"      // size computation
	PhaseClassify  Phase = "classify"  // code generator classification
	PhaseRender    Phase = "render"    // diagnostic printing
	PhaseCodec     Phase = "codec"     // auxiliary payload handling
	PhaseSymtab    Phase = "symtab"    // handle resolution
)

// Kind categorizes the diagnostic.
type Kind string

const (
	KindUnknownSize Kind = "unknown_size"
	KindIllegalType Kind = "illegal_type"
	KindInternal    Kind = "internal"
)

// Error is a user-diagnosable compiler error. It never aborts compilation;
// the operation that raises it substitutes a safe result and goes on.
type Error struct {
	Value  any
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (value %v)", e.Value)
	}

	return b.String()
}

// Is reports whether target matches this error.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// UnknownSize creates the "size of data type is unknown" diagnostic.
func UnknownSize(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownSize,
		Detail: "size of data type is unknown",
	}
}

// IllegalType creates the diagnostic for a type without a valid code
// generator classification.
func IllegalType(value any) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindIllegalType,
		Detail: "illegal type",
		Value:  value,
	}
}

// Reporter collects user-diagnosable errors. The compiler driver inspects
// the count after each phase to decide whether code generation may run.
type Reporter struct {
	errs []*Error
}

// NewReporter creates an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records the error and logs it.
func (r *Reporter) Report(e *Error) {
	r.errs = append(r.errs, e)
	Logger().Error("diagnostic",
		zap.String("phase", string(e.Phase)),
		zap.String("kind", string(e.Kind)),
		zap.String("detail", e.Detail),
	)
}

// Errors returns the recorded diagnostics in report order.
func (r *Reporter) Errors() []*Error {
	return r.errs
}

// Count returns the number of recorded diagnostics.
func (r *Reporter) Count() int {
	return len(r.errs)
}

var defaultReporter = NewReporter()

// Default returns the process-wide reporter used when no explicit one is
// threaded through.
func Default() *Reporter {
	return defaultReporter
}

// SetDefault replaces the process-wide reporter and returns the previous
// one. Intended for the compiler driver and for tests.
func SetDefault(r *Reporter) *Reporter {
	prev := defaultReporter
	defaultReporter = r
	return prev
}
