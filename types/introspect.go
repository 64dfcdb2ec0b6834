package types

import (
	"strings"

	"github.com/retrocc/retrocc"
	"github.com/retrocc/retrocc/diag"
	"github.com/retrocc/retrocc/symtab"
)

// IsTypeArray reports whether the leading tag is an array.
func IsTypeArray(t retrocc.Type) bool {
	return t[0].Unqualified() == retrocc.TArray
}

// IsTypePtr reports whether the leading tag is a pointer.
func IsTypePtr(t retrocc.Type) bool {
	return t[0].Unqualified() == retrocc.TPtr
}

// IsTypeFunc reports whether the leading tag is a function.
func IsTypeFunc(t retrocc.Type) bool {
	return t[0].Unqualified() == retrocc.TFunc
}

// IsTypeVoid reports whether the leading tag is void.
func IsTypeVoid(t retrocc.Type) bool {
	return t[0].Unqualified() == retrocc.TVoid
}

// IsClassInt reports whether this is an integer type.
func IsClassInt(t retrocc.Type) bool {
	return t[0].Class() == retrocc.ClassInt
}

// IsClassFloat reports whether this is a float type.
func IsClassFloat(t retrocc.Type) bool {
	return t[0].Class() == retrocc.ClassFloat
}

// IsClassPtr reports whether this is a pointer or array type.
func IsClassPtr(t retrocc.Type) bool {
	return t[0].Class() == retrocc.ClassPtr
}

// IsClassStruct reports whether this is a struct or union type.
func IsClassStruct(t retrocc.Type) bool {
	return t[0].Class() == retrocc.ClassStruct
}

// IsUnsigned reports whether this is an unsigned type.
func IsUnsigned(t retrocc.Type) bool {
	return t[0].Sign() == retrocc.SignUnsigned
}

// Qualifier returns the qualifier bits of the type. For an array the
// logical qualifier comes from the element type, not the array tag.
func Qualifier(t retrocc.Type) retrocc.Token {
	if IsTypeArray(t) {
		t = t[AuxSlots+1:]
	}
	return t[0].Qual()
}

// IsQualConst reports whether the type has a const memory image.
func IsQualConst(t retrocc.Type) bool {
	return Qualifier(t)&retrocc.QualConst != 0
}

// IsQualVolatile reports whether the type is volatile qualified.
func IsQualVolatile(t retrocc.Type) bool {
	return Qualifier(t)&retrocc.QualVolatile != 0
}

// SizeOf computes the byte size of the object described by the type string.
// Incomplete types (void, arrays of unspecified length) have size zero; an
// unrecognized tag is an internal fault.
func SizeOf(t retrocc.Type) uint32 {
	switch t[0].Unqualified() {

	case retrocc.TVoid:
		return 0

	case retrocc.TSChar, retrocc.TUChar:
		return retrocc.SizeofChar

	case retrocc.TShort, retrocc.TUShort:
		return retrocc.SizeofShort

	case retrocc.TInt, retrocc.TUInt, retrocc.TEnum:
		return retrocc.SizeofInt

	// A function tag here can only be a pointer to function.
	case retrocc.TPtr, retrocc.TFunc:
		return retrocc.SizeofPtr

	case retrocc.TLong, retrocc.TULong:
		return retrocc.SizeofLong

	case retrocc.TLongLong, retrocc.TULongLong:
		return retrocc.SizeofLongLong

	case retrocc.TFloat:
		return retrocc.SizeofFloat

	case retrocc.TDouble:
		return retrocc.SizeofDouble

	case retrocc.TStruct, retrocc.TUnion:
		return symtab.Resolve(DecodeHandle(t[1:])).Size

	case retrocc.TArray:
		count := ElementCount(t)
		if count == 0 {
			// Array with unspecified size
			return 0
		}
		return count * SizeOf(t[AuxSlots+1:])

	default:
		diag.FailValue("types.SizeOf", uint16(t[0]), "unknown type tag")
		return 0
	}
}

// PointerSizeOf computes the size of what the pointer or array points to.
func PointerSizeOf(t retrocc.Type) uint32 {
	return SizeOf(Indirect(t))
}

// CheckedSizeOf returns the size of a data type. A zero size is reported as
// a user error and replaced by a valid size, so the rest of the compiler
// never works with size zero.
func CheckedSizeOf(t retrocc.Type) uint32 {
	size := SizeOf(t)
	if size == 0 {
		diag.Default().Report(diag.UnknownSize(diag.PhaseSize))
		size = retrocc.SizeofChar
	}
	return size
}

// CheckedPointerSizeOf is CheckedSizeOf for the pointed-to type.
func CheckedPointerSizeOf(t retrocc.Type) uint32 {
	size := PointerSizeOf(t)
	if size == 0 {
		diag.Default().Report(diag.UnknownSize(diag.PhaseSize))
		size = retrocc.SizeofChar
	}
	return size
}

// Indirect does one indirection: it returns a view of the type the given
// pointer or array type points to.
func Indirect(t retrocc.Type) retrocc.Type {
	diag.Check(IsClassPtr(t), "types.Indirect", "not a pointer class type")

	// Skip the pointer or array token itself
	if IsTypeArray(t) {
		return t[AuxSlots+1:]
	}
	return t[1:]
}

// FuncDescOf returns the function descriptor of a function or
// pointer-to-function type.
func FuncDescOf(t retrocc.Type) *symtab.FuncDesc {
	if t[0].Unqualified() == retrocc.TPtr {
		// Pointer to function
		t = t[1:]
	}
	diag.Check(t[0] == retrocc.TFunc, "types.FuncDescOf", "not a function type")
	return symtab.ResolveFunc(DecodeHandle(t[1:]))
}

// FuncReturn returns a view of the return type of a function or
// pointer-to-function type.
func FuncReturn(t retrocc.Type) retrocc.Type {
	if t[0].Unqualified() == retrocc.TPtr {
		t = t[1:]
	}
	diag.Check(t[0] == retrocc.TFunc, "types.FuncReturn", "not a function type")
	return t[1+AuxSlots:]
}

// IsFastcallFunc reports whether a function or pointer-to-function type uses
// the __fastcall__ convention.
func IsFastcallFunc(t retrocc.Type) bool {
	return FuncDescOf(t).IsFastcall()
}

// IsVariadicFunc reports whether a function or pointer-to-function type has
// a variable parameter list.
func IsVariadicFunc(t retrocc.Type) bool {
	return FuncDescOf(t).IsVariadic()
}

// ElementCount returns the element count of an array type. Zero means the
// length is unspecified.
func ElementCount(t retrocc.Type) uint32 {
	diag.Check(IsTypeArray(t), "types.ElementCount", "not an array type")
	return DecodeAux(t[1:])
}

// ElementType returns a view of the element type of an array type.
func ElementType(t retrocc.Type) retrocc.Type {
	diag.Check(IsTypeArray(t), "types.ElementType", "not an array type")
	return t[AuxSlots+1:]
}

// CGClass is the coarse classification the code generator consumes. The
// zero value is the plain word class.
type CGClass uint16

const (
	CGInt      CGClass = 0x0000 // word sized
	CGChar     CGClass = 0x0001 // byte sized
	CGLong     CGClass = 0x0002 // double word
	CGFloat    CGClass = 0x0004
	CGUnsigned CGClass = 0x0008
	CGFixArgC  CGClass = 0x0010 // call site passes a fixed argument count
)

func (c CGClass) String() string {
	if c&CGFloat != 0 {
		return "float"
	}
	var parts []string
	switch {
	case c&CGChar != 0:
		parts = append(parts, "byte")
	case c&CGLong != 0:
		parts = append(parts, "dword")
	default:
		parts = append(parts, "word")
	}
	if c&CGUnsigned != 0 {
		parts = append(parts, "unsigned")
	}
	if c&CGFixArgC != 0 {
		parts = append(parts, "fixargc")
	}
	return strings.Join(parts, " ")
}

// CodegenClass projects the type onto the code generator's classification.
// Addresses (pointers, arrays, aggregates) collapse to the unsigned word
// class. A type without a classification is reported as a user error and
// substituted by the plain word class.
func CodegenClass(t retrocc.Type) CGClass {
	switch t[0].Unqualified() {

	case retrocc.TSChar:
		return CGChar

	case retrocc.TUChar:
		return CGChar | CGUnsigned

	case retrocc.TShort, retrocc.TInt, retrocc.TEnum:
		return CGInt

	case retrocc.TUShort, retrocc.TUInt, retrocc.TPtr, retrocc.TArray:
		return CGInt | CGUnsigned

	case retrocc.TLong:
		return CGLong

	case retrocc.TULong:
		return CGLong | CGUnsigned

	case retrocc.TFloat, retrocc.TDouble:
		// Identical in the backend
		return CGFloat

	case retrocc.TFunc:
		f := symtab.ResolveFunc(DecodeHandle(t[1:]))
		if f.IsVariadic() {
			return CGInt
		}
		return CGFixArgC

	case retrocc.TStruct, retrocc.TUnion:
		// Address of the aggregate
		return CGInt | CGUnsigned

	default:
		diag.Default().Report(diag.IllegalType(uint16(t[0])))
		return CGInt
	}
}
