package types

import (
	"sync"

	"github.com/retrocc/retrocc"
	"github.com/retrocc/retrocc/diag"
	"github.com/retrocc/retrocc/symtab"
)

// Predefined type strings. Shared constants, never freed.
var (
	TypeUchar = retrocc.Type{retrocc.TUChar, retrocc.TEnd}
	TypeInt   = retrocc.Type{retrocc.TInt, retrocc.TEnd}
	TypeUint  = retrocc.Type{retrocc.TUInt, retrocc.TEnd}
	TypeLong  = retrocc.Type{retrocc.TLong, retrocc.TEnd}
	TypeUlong = retrocc.Type{retrocc.TULong, retrocc.TEnd}
	TypeVoid  = retrocc.Type{retrocc.TVoid, retrocc.TEnd}
	TypeSizeT = retrocc.Type{retrocc.TUInt, retrocc.TEnd}
)

// Len returns the number of tokens before the sentinel.
func Len(t retrocc.Type) int {
	n := 0
	for t[n] != retrocc.TEnd {
		n++
	}
	return n
}

// Copy copies src into dst including the sentinel and returns dst. The
// caller guarantees capacity for Len(src)+1 tokens.
func Copy(dst, src retrocc.Type) retrocc.Type {
	for i := 0; ; i++ {
		dst[i] = src[i]
		if src[i] == retrocc.TEnd {
			return dst
		}
	}
}

// Concat appends src at dst's sentinel position and returns dst. The caller
// guarantees capacity.
func Concat(dst, src retrocc.Type) retrocc.Type {
	Copy(dst[Len(dst):], src)
	return dst
}

// Dup returns an owned copy of the type string.
func Dup(t retrocc.Type) retrocc.Type {
	n := Len(t) + 1
	d := Alloc(n)
	copy(d, t[:n])
	return d
}

// Type string buffers are recycled through a pool; most derived types are
// built and discarded within a single expression.
const (
	poolMaxCap  = 64
	poolInitCap = 8
)

var typePool = sync.Pool{
	New: func() any {
		buf := make(retrocc.Type, 0, poolInitCap)
		return &buf
	},
}

// Alloc returns an owned, uninitialized type string of n tokens. n must
// include room for the sentinel.
func Alloc(n int) retrocc.Type {
	diag.Check(n > 0, "types.Alloc", "length must include the sentinel")
	buf := *typePool.Get().(*retrocc.Type)
	if cap(buf) < n {
		return make(retrocc.Type, n)
	}
	return buf[:n]
}

// Free recycles an owned type string. The caller must not touch t
// afterwards; freeing a predefined singleton is a caller bug the pool
// cannot detect.
func Free(t retrocc.Type) {
	if t == nil || cap(t) > poolMaxCap {
		return
	}
	t = t[:0]
	typePool.Put(&t)
}

// PointerTo builds the owned type string "pointer to t".
func PointerTo(t retrocc.Type) retrocc.Type {
	size := Len(t) + 1
	p := Alloc(size + 1)
	p[0] = retrocc.TPtr
	copy(p[1:], t[:size])
	return p
}

// ArrayToPointer converts an array type to a pointer to its first element
// (array decay). The result is owned by the caller.
func ArrayToPointer(t retrocc.Type) retrocc.Type {
	diag.Check(IsTypeArray(t), "types.ArrayToPointer", "not an array type")
	return PointerTo(t[AuxSlots+1:])
}

// DefaultChar returns the tag of plain char under the given signedness
// setting.
func DefaultChar(sign retrocc.CharSign) retrocc.Token {
	if sign == retrocc.SignedChars {
		return retrocc.TSChar
	}
	return retrocc.TUChar
}

// SignExtendChar sign extends a character value read from the source.
func SignExtendChar(c int, sign retrocc.CharSign) int {
	if sign == retrocc.SignedChars && c&0x80 != 0 {
		return c | ^0xFF
	}
	return c & 0xFF
}

// CharArray builds the owned type string for a char array of the given
// length. The element tag follows the default char signedness.
func CharArray(count uint32, sign retrocc.CharSign) retrocc.Type {
	t := Alloc(1 + AuxSlots + 2)

	t[0] = retrocc.TArray
	EncodeAux(t[1:], count)
	t[AuxSlots+1] = DefaultChar(sign)
	t[AuxSlots+2] = retrocc.TEnd

	return t
}

// ImplicitFuncType builds the owned type string for an implicitly declared
// function: variadic, no declared parameters, returning int.
func ImplicitFuncType() retrocc.Type {
	f := symtab.NewFuncDesc()
	f.Flags = symtab.FuncImplicit | symtab.FuncEmpty | symtab.FuncVariadic
	f.SymTab = symtab.EmptyTable
	f.TagTab = symtab.EmptyTable

	t := Alloc(1 + AuxSlots + 2)

	t[0] = retrocc.TFunc
	EncodeHandle(t[1:], symtab.InternFunc(f))
	t[AuxSlots+1] = retrocc.TInt
	t[AuxSlots+2] = retrocc.TEnd

	return t
}
