package types

import (
	"github.com/retrocc/retrocc"
	"github.com/retrocc/retrocc/symtab"
)

// AuxSlots is the number of token slots one auxiliary payload occupies.
// Three 15-bit chunks hold any 32-bit element count or handle.
const AuxSlots = 3

const (
	auxChunkBits        = 15
	auxChunkMask uint32 = 0x7FFF
)

// EncodeAux packs v into t[0:AuxSlots], least significant chunk first. Every
// chunk carries the AuxData marker so it can never read as a type tag.
func EncodeAux(t retrocc.Type, v uint32) {
	for i := 0; i < AuxSlots; i++ {
		t[i] = retrocc.Token(v&auxChunkMask) | retrocc.AuxData
		v >>= auxChunkBits
	}
}

// DecodeAux is the inverse of EncodeAux.
func DecodeAux(t retrocc.Type) uint32 {
	var v uint32
	for i := AuxSlots - 1; i >= 0; i-- {
		v <<= auxChunkBits
		v |= uint32(t[i]) & auxChunkMask
	}
	return v
}

// EncodeHandle stores a symbol-table handle in the payload slots.
func EncodeHandle(t retrocc.Type, h symtab.Handle) {
	EncodeAux(t, uint32(h))
}

// DecodeHandle retrieves a symbol-table handle from the payload slots.
func DecodeHandle(t retrocc.Type) symtab.Handle {
	return symtab.Handle(DecodeAux(t))
}

// HasEncoded reports whether the type's leading tag is followed by an
// auxiliary payload.
func HasEncoded(t retrocc.Type) bool {
	return IsClassStruct(t) || IsTypeArray(t) || IsTypeFunc(t)
}

// CopyEncoded copies one payload region from src to dst.
func CopyEncoded(dst, src retrocc.Type) {
	copy(dst[:AuxSlots], src[:AuxSlots])
}
