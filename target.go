package retrocc

// Object sizes on the 8-bit target, in bytes. Pointers are 16 bit; float and
// double collapse to the same 32-bit representation in the backend.
const (
	SizeofChar     = 1
	SizeofShort    = 2
	SizeofInt      = 2
	SizeofLong     = 4
	SizeofLongLong = 8
	SizeofFloat    = 4
	SizeofDouble   = 4
	SizeofPtr      = 2
)

// CharSign selects the signedness of plain char. It is decided once by the
// front end (command line or pragma) and passed explicitly into the
// operations that depend on it.
type CharSign uint8

const (
	SignedChars CharSign = iota
	UnsignedChars
)

func (s CharSign) String() string {
	if s == UnsignedChars {
		return "unsigned"
	}
	return "signed"
}
