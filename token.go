package retrocc

// Token is one element of a type string. The low bits select the base type,
// the remaining fields carry the class grouping, signedness and qualifiers.
// A token with the AuxData bit set is not a type tag but one chunk of an
// auxiliary payload.
type Token uint16

// Type is a type string: a Token sequence terminated by TEnd. The sentinel
// is always present, so a Type is never empty.
type Type []Token

// Base types, stored in the low nibble of a token.
const (
	BaseNone     Token = 0x0000
	BaseChar     Token = 0x0001
	BaseShort    Token = 0x0002
	BaseInt      Token = 0x0003
	BaseLong     Token = 0x0004
	BaseLongLong Token = 0x0005
	BaseEnum     Token = 0x0006
	BaseFloat    Token = 0x0007
	BaseDouble   Token = 0x0008
	BaseVoid     Token = 0x0009
	BaseStruct   Token = 0x000A
	BaseUnion    Token = 0x000B
	BaseArray    Token = 0x000C
	BasePtr      Token = 0x000D
	BaseFunc     Token = 0x000E

	MaskBase Token = 0x000F
)

// Classes group base types for coarse dispatch.
const (
	ClassNone   Token = 0x0000
	ClassInt    Token = 0x0010
	ClassFloat  Token = 0x0020
	ClassPtr    Token = 0x0030
	ClassStruct Token = 0x0040
	ClassFunc   Token = 0x0050
	ClassVoid   Token = 0x0060

	MaskClass Token = 0x0070
)

// Signedness, meaningful only for the integer class.
const (
	SignNone     Token = 0x0000
	SignUnsigned Token = 0x0100
	SignSigned   Token = 0x0200

	MaskSign Token = 0x0300
)

// Qualifiers.
const (
	QualNone     Token = 0x0000
	QualConst    Token = 0x1000
	QualVolatile Token = 0x2000

	MaskQual Token = 0x3000
)

// TEnd terminates every type string. AuxData marks a token slot as carrying
// a chunk of an auxiliary payload instead of a type tag.
const (
	TEnd    Token = 0x0000
	AuxData Token = 0x8000
)

// Complete type tags.
const (
	TChar      = BaseChar | ClassInt | SignNone
	TSChar     = BaseChar | ClassInt | SignSigned
	TUChar     = BaseChar | ClassInt | SignUnsigned
	TShort     = BaseShort | ClassInt | SignSigned
	TUShort    = BaseShort | ClassInt | SignUnsigned
	TInt       = BaseInt | ClassInt | SignSigned
	TUInt      = BaseInt | ClassInt | SignUnsigned
	TLong      = BaseLong | ClassInt | SignSigned
	TULong     = BaseLong | ClassInt | SignUnsigned
	TLongLong  = BaseLongLong | ClassInt | SignSigned
	TULongLong = BaseLongLong | ClassInt | SignUnsigned
	TEnum      = BaseEnum | ClassInt | SignSigned
	TFloat     = BaseFloat | ClassFloat
	TDouble    = BaseDouble | ClassFloat
	TVoid      = BaseVoid | ClassVoid
	TStruct    = BaseStruct | ClassStruct
	TUnion     = BaseUnion | ClassStruct
	TArray     = BaseArray | ClassPtr
	TPtr       = BasePtr | ClassPtr
	TFunc      = BaseFunc | ClassFunc
)

// Base returns the base type field.
func (t Token) Base() Token { return t & MaskBase }

// Class returns the class field.
func (t Token) Class() Token { return t & MaskClass }

// Sign returns the signedness field.
func (t Token) Sign() Token { return t & MaskSign }

// Qual returns the qualifier bits.
func (t Token) Qual() Token { return t & MaskQual }

// Unqualified strips the qualifier bits, leaving the tag suitable for
// switch-style dispatch on the complete type.
func (t Token) Unqualified() Token { return t &^ MaskQual }

// IsAux reports whether the token is an auxiliary payload chunk.
func (t Token) IsAux() bool { return t&AuxData != 0 }

var baseNames = [...]string{
	BaseNone:     "none",
	BaseChar:     "char",
	BaseShort:    "short",
	BaseInt:      "int",
	BaseLong:     "long",
	BaseLongLong: "long long",
	BaseEnum:     "enum",
	BaseFloat:    "float",
	BaseDouble:   "double",
	BaseVoid:     "void",
	BaseStruct:   "struct",
	BaseUnion:    "union",
	BaseArray:    "array",
	BasePtr:      "pointer",
	BaseFunc:     "function",
}

// String names the token's base type.
func (t Token) String() string {
	if b := int(t.Base()); b < len(baseNames) {
		return baseNames[b]
	}
	return "unknown"
}
