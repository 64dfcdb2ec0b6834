package diag

import (
	"fmt"

	"go.uber.org/zap"
)

// InternalError is the panic payload of an internal fault. It identifies the
// operation and the offending value so the crash report points at the broken
// invariant, not at the user's program.
type InternalError struct {
	Value  any
	Op     string
	Detail string
}

func (e *InternalError) Error() string {
	s := fmt.Sprintf("[internal] %s: %s", e.Op, e.Detail)
	if e.Value != nil {
		s += fmt.Sprintf(" (value %04X)", e.Value)
	}
	return s
}

// Fail aborts compilation with an internal fault.
func Fail(op, format string, args ...any) {
	fail(op, nil, format, args...)
}

// FailValue aborts compilation with an internal fault carrying the
// offending token or handle.
func FailValue(op string, value any, format string, args ...any) {
	fail(op, value, format, args...)
}

// Check asserts a precondition; a violated check is an internal fault.
func Check(cond bool, op, detail string) {
	if !cond {
		fail(op, nil, "%s", detail)
	}
}

func fail(op string, value any, format string, args ...any) {
	e := &InternalError{
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
		Value:  value,
	}
	Logger().Error("internal fault",
		zap.String("op", e.Op),
		zap.String("detail", e.Detail),
		zap.Any("value", e.Value),
	)
	panic(e)
}
