package types

import (
	"errors"
	"testing"

	"github.com/retrocc/retrocc"
	"github.com/retrocc/retrocc/diag"
	"github.com/retrocc/retrocc/symtab"
)

// expectFault runs fn and requires it to abort with an internal fault.
func expectFault(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected an internal fault")
		}
		if _, ok := r.(*diag.InternalError); !ok {
			t.Fatalf("panic value %T, want *diag.InternalError", r)
		}
	}()
	fn()
}

// captureDiags installs a fresh default reporter for the test.
func captureDiags(t *testing.T) *diag.Reporter {
	t.Helper()
	r := diag.NewReporter()
	prev := diag.SetDefault(r)
	t.Cleanup(func() { diag.SetDefault(prev) })
	return r
}

func structType(tb testing.TB, name string, size uint32) retrocc.Type {
	tb.Helper()
	h := symtab.Intern(&symtab.Entry{Name: name, Size: size})
	typ := Alloc(1 + AuxSlots + 1)
	typ[0] = retrocc.TStruct
	EncodeHandle(typ[1:], h)
	typ[1+AuxSlots] = retrocc.TEnd
	return typ
}

func funcType(tb testing.TB, d *symtab.FuncDesc, ret retrocc.Type) retrocc.Type {
	tb.Helper()
	size := Len(ret) + 1
	typ := Alloc(1 + AuxSlots + size)
	typ[0] = retrocc.TFunc
	EncodeHandle(typ[1:], symtab.InternFunc(d))
	copy(typ[1+AuxSlots:], ret[:size])
	return typ
}

func TestSizeOfPrimitives(t *testing.T) {
	tests := []struct {
		name string
		typ  retrocc.Type
		want uint32
	}{
		{"void", TypeVoid, 0},
		{"signed char", retrocc.Type{retrocc.TSChar, retrocc.TEnd}, retrocc.SizeofChar},
		{"unsigned char", TypeUchar, retrocc.SizeofChar},
		{"short", retrocc.Type{retrocc.TShort, retrocc.TEnd}, retrocc.SizeofShort},
		{"int", TypeInt, retrocc.SizeofInt},
		{"unsigned int", TypeUint, retrocc.SizeofInt},
		{"enum", retrocc.Type{retrocc.TEnum, retrocc.TEnd}, retrocc.SizeofInt},
		{"long", TypeLong, retrocc.SizeofLong},
		{"unsigned long", TypeUlong, retrocc.SizeofLong},
		{"long long", retrocc.Type{retrocc.TLongLong, retrocc.TEnd}, retrocc.SizeofLongLong},
		{"float", retrocc.Type{retrocc.TFloat, retrocc.TEnd}, retrocc.SizeofFloat},
		{"double", retrocc.Type{retrocc.TDouble, retrocc.TEnd}, retrocc.SizeofDouble},
		{"const int", retrocc.Type{retrocc.TInt | retrocc.QualConst, retrocc.TEnd}, retrocc.SizeofInt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SizeOf(tc.typ); got != tc.want {
				t.Errorf("SizeOf = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSizeOfArray(t *testing.T) {
	arr := makeArray(t, TypeLong, 6)
	if got, want := SizeOf(arr), uint32(6*retrocc.SizeofLong); got != want {
		t.Errorf("SizeOf = %d, want %d", got, want)
	}

	nested := makeArray(t, makeArray(t, TypeInt, 3), 2)
	if got, want := SizeOf(nested), uint32(2*3*retrocc.SizeofInt); got != want {
		t.Errorf("SizeOf nested = %d, want %d", got, want)
	}

	open := CharArray(0, retrocc.SignedChars)
	if got := SizeOf(open); got != 0 {
		t.Errorf("SizeOf unspecified array = %d, want 0", got)
	}
}

func TestSizeOfStruct(t *testing.T) {
	typ := structType(t, "header", 7)
	if got := SizeOf(typ); got != 7 {
		t.Errorf("SizeOf = %d, want 7", got)
	}
}

func TestSizeOfUnknownTagFaults(t *testing.T) {
	bogus := retrocc.Type{retrocc.Token(0x000F), retrocc.TEnd}
	expectFault(t, func() { SizeOf(bogus) })
}

func TestCheckedSizeOf(t *testing.T) {
	r := captureDiags(t)

	if got := CheckedSizeOf(TypeInt); got != retrocc.SizeofInt {
		t.Errorf("CheckedSizeOf(int) = %d", got)
	}
	if r.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Errors())
	}

	if got := CheckedSizeOf(TypeVoid); got != retrocc.SizeofChar {
		t.Errorf("CheckedSizeOf(void) = %d, want fallback %d", got, retrocc.SizeofChar)
	}
	if r.Count() != 1 {
		t.Fatalf("diagnostic count = %d, want 1", r.Count())
	}
	if !errors.Is(r.Errors()[0], diag.UnknownSize(diag.PhaseSize)) {
		t.Errorf("diagnostic = %v, want unknown size", r.Errors()[0])
	}

	open := CharArray(0, retrocc.SignedChars)
	if got := CheckedSizeOf(open); got != retrocc.SizeofChar {
		t.Errorf("CheckedSizeOf(open array) = %d, want fallback", got)
	}
	if r.Count() != 2 {
		t.Fatalf("diagnostic count = %d, want 2", r.Count())
	}
}

func TestPointerSizeOf(t *testing.T) {
	if got := PointerSizeOf(PointerTo(TypeLong)); got != retrocc.SizeofLong {
		t.Errorf("PointerSizeOf(long*) = %d", got)
	}

	arr := makeArray(t, TypeLong, 4)
	if got := PointerSizeOf(arr); got != retrocc.SizeofLong {
		t.Errorf("PointerSizeOf(long[4]) = %d", got)
	}

	expectFault(t, func() { PointerSizeOf(TypeInt) })
}

func TestCheckedPointerSizeOf(t *testing.T) {
	r := captureDiags(t)

	if got := CheckedPointerSizeOf(PointerTo(TypeVoid)); got != retrocc.SizeofChar {
		t.Errorf("CheckedPointerSizeOf(void*) = %d, want fallback", got)
	}
	if r.Count() != 1 {
		t.Fatalf("diagnostic count = %d, want 1", r.Count())
	}
}

func TestIndirect(t *testing.T) {
	tests := []struct {
		name string
		typ  retrocc.Type
	}{
		{"int", TypeInt},
		{"unsigned long", TypeUlong},
		{"char array", CharArray(3, retrocc.SignedChars)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Indirect(PointerTo(tc.typ)); !tokensEqual(got, tc.typ) {
				t.Errorf("Indirect(PointerTo(T)) != T")
			}
		})
	}

	arr := makeArray(t, TypeInt, 5)
	if got := Indirect(arr); !tokensEqual(got, TypeInt) {
		t.Error("Indirect(int[5]) != int")
	}

	expectFault(t, func() { Indirect(TypeInt) })
}

func TestArrayDecay(t *testing.T) {
	arr := makeArray(t, TypeInt, 5)
	decayed := ArrayToPointer(arr)

	if got := SizeOf(decayed); got != retrocc.SizeofPtr {
		t.Errorf("SizeOf(decayed) = %d, want %d", got, retrocc.SizeofPtr)
	}
	if got := Render(decayed); got != "int*" {
		t.Errorf("Render(decayed) = %q, want %q", got, "int*")
	}

	expectFault(t, func() { ArrayToPointer(PointerTo(TypeInt)) })
}

func TestClassPredicates(t *testing.T) {
	arr := makeArray(t, TypeInt, 2)
	st := structType(t, "s", 2)
	flt := retrocc.Type{retrocc.TFloat, retrocc.TEnd}

	tests := []struct {
		name                         string
		typ                          retrocc.Type
		isInt, isFloat, isPtr, isStr bool
	}{
		{"int", TypeInt, true, false, false, false},
		{"float", flt, false, true, false, false},
		{"pointer", PointerTo(TypeInt), false, false, true, false},
		{"array", arr, false, false, true, false},
		{"struct", st, false, false, false, true},
		{"void", TypeVoid, false, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsClassInt(tc.typ); got != tc.isInt {
				t.Errorf("IsClassInt = %v", got)
			}
			if got := IsClassFloat(tc.typ); got != tc.isFloat {
				t.Errorf("IsClassFloat = %v", got)
			}
			if got := IsClassPtr(tc.typ); got != tc.isPtr {
				t.Errorf("IsClassPtr = %v", got)
			}
			if got := IsClassStruct(tc.typ); got != tc.isStr {
				t.Errorf("IsClassStruct = %v", got)
			}
		})
	}
}

func TestIsUnsigned(t *testing.T) {
	if IsUnsigned(TypeInt) {
		t.Error("int must not be unsigned")
	}
	if !IsUnsigned(TypeUint) {
		t.Error("unsigned int must be unsigned")
	}
	if !IsUnsigned(TypeUchar) {
		t.Error("unsigned char must be unsigned")
	}
}

func TestQualifier(t *testing.T) {
	constInt := retrocc.Type{retrocc.TInt | retrocc.QualConst, retrocc.TEnd}
	volLong := retrocc.Type{retrocc.TLong | retrocc.QualVolatile, retrocc.TEnd}

	if !IsQualConst(constInt) || IsQualVolatile(constInt) {
		t.Error("const int misclassified")
	}
	if !IsQualVolatile(volLong) || IsQualConst(volLong) {
		t.Error("volatile long misclassified")
	}
	if IsQualConst(TypeInt) {
		t.Error("plain int reported const")
	}

	// For arrays the qualifier comes from the element type.
	constElem := retrocc.Type{retrocc.TSChar | retrocc.QualConst, retrocc.TEnd}
	arr := makeArray(t, constElem, 4)
	if !IsQualConst(arr) {
		t.Error("array of const char must be const")
	}
	if got := Qualifier(arr); got != retrocc.QualConst {
		t.Errorf("Qualifier = %04X, want const", uint16(got))
	}
}

func TestElementAccessors(t *testing.T) {
	arr := makeArray(t, TypeLong, 9)

	if got := ElementCount(arr); got != 9 {
		t.Errorf("ElementCount = %d, want 9", got)
	}
	if got := ElementType(arr); !tokensEqual(got, TypeLong) {
		t.Error("ElementType != long")
	}

	expectFault(t, func() { ElementCount(TypeInt) })
	expectFault(t, func() { ElementType(PointerTo(TypeInt)) })
}

func TestFuncDescAccess(t *testing.T) {
	d := symtab.NewFuncDesc()
	d.Flags = symtab.FuncFastcall
	typ := funcType(t, d, TypeLong)

	if got := FuncDescOf(typ); got != d {
		t.Error("FuncDescOf did not resolve the descriptor")
	}
	if !tokensEqual(FuncReturn(typ), TypeLong) {
		t.Error("FuncReturn != long")
	}

	// Resolution through a pointer to function.
	ptr := PointerTo(typ)
	if got := FuncDescOf(ptr); got != d {
		t.Error("FuncDescOf through pointer failed")
	}
	if !IsFastcallFunc(ptr) {
		t.Error("IsFastcallFunc through pointer failed")
	}
	if IsVariadicFunc(typ) {
		t.Error("non-variadic descriptor reported variadic")
	}
	if !tokensEqual(FuncReturn(ptr), TypeLong) {
		t.Error("FuncReturn through pointer failed")
	}

	expectFault(t, func() { FuncDescOf(TypeInt) })
	expectFault(t, func() { FuncReturn(PointerTo(TypeInt)) })
}

func TestCodegenClass(t *testing.T) {
	arr := makeArray(t, TypeInt, 2)
	st := structType(t, "s2", 2)
	variadic := symtab.NewFuncDesc()
	variadic.Flags = symtab.FuncVariadic

	tests := []struct {
		name string
		typ  retrocc.Type
		want CGClass
	}{
		{"signed char", retrocc.Type{retrocc.TSChar, retrocc.TEnd}, CGChar},
		{"unsigned char", TypeUchar, CGChar | CGUnsigned},
		{"short", retrocc.Type{retrocc.TShort, retrocc.TEnd}, CGInt},
		{"int", TypeInt, CGInt},
		{"enum", retrocc.Type{retrocc.TEnum, retrocc.TEnd}, CGInt},
		{"unsigned short", retrocc.Type{retrocc.TUShort, retrocc.TEnd}, CGInt | CGUnsigned},
		{"unsigned int", TypeUint, CGInt | CGUnsigned},
		{"pointer", PointerTo(TypeInt), CGInt | CGUnsigned},
		{"array", arr, CGInt | CGUnsigned},
		{"long", TypeLong, CGLong},
		{"unsigned long", TypeUlong, CGLong | CGUnsigned},
		{"float", retrocc.Type{retrocc.TFloat, retrocc.TEnd}, CGFloat},
		{"double", retrocc.Type{retrocc.TDouble, retrocc.TEnd}, CGFloat},
		{"struct", st, CGInt | CGUnsigned},
		{"fixed args function", funcType(t, symtab.NewFuncDesc(), TypeInt), CGFixArgC},
		{"variadic function", funcType(t, variadic, TypeInt), CGInt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodegenClass(tc.typ); got != tc.want {
				t.Errorf("CodegenClass = %04X, want %04X", uint16(got), uint16(tc.want))
			}
		})
	}
}

func TestCodegenClassIllegal(t *testing.T) {
	r := captureDiags(t)

	if got := CodegenClass(TypeVoid); got != CGInt {
		t.Errorf("CodegenClass(void) = %04X, want int substitute", uint16(got))
	}
	if r.Count() != 1 {
		t.Fatalf("diagnostic count = %d, want 1", r.Count())
	}
	if !errors.Is(r.Errors()[0], diag.IllegalType(nil)) {
		t.Errorf("diagnostic = %v, want illegal type", r.Errors()[0])
	}
}

func TestCGClassString(t *testing.T) {
	tests := []struct {
		class CGClass
		want  string
	}{
		{CGInt, "word"},
		{CGInt | CGUnsigned, "word unsigned"},
		{CGChar, "byte"},
		{CGChar | CGUnsigned, "byte unsigned"},
		{CGLong, "dword"},
		{CGFloat, "float"},
		{CGFixArgC, "word fixargc"},
	}

	for _, tc := range tests {
		if got := tc.class.String(); got != tc.want {
			t.Errorf("String(%04X) = %q, want %q", uint16(tc.class), got, tc.want)
		}
	}
}
