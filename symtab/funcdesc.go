package symtab

// FuncFlags describe a function type's calling characteristics.
type FuncFlags uint16

const (
	FuncNone      FuncFlags = 0
	FuncEmpty     FuncFlags = 1 << iota // () empty parameter list
	FuncVoidParam                       // (void) parameter list
	FuncVariadic                        // (...) ellipsis
	FuncFastcall                        // __fastcall__ calling convention
	FuncNear                            // __near__
	FuncFar                             // __far__
	FuncImplicit                        // implicitly declared, K&R style
)

// FuncDesc describes a function type. It is referenced by handle from the
// function tag of a type string and owned by this package.
type FuncDesc struct {
	SymTab     *Table
	TagTab     *Table
	Flags      FuncFlags
	ParamCount uint32
}

// NewFuncDesc creates a function descriptor with no flags and no parameters.
func NewFuncDesc() *FuncDesc {
	return &FuncDesc{
		SymTab: EmptyTable,
		TagTab: EmptyTable,
	}
}

// IsVariadic reports whether the described function takes a variable
// argument list.
func (f *FuncDesc) IsVariadic() bool {
	return f.Flags&FuncVariadic != 0
}

// IsFastcall reports whether the described function uses the __fastcall__
// convention.
func (f *FuncDesc) IsFastcall() bool {
	return f.Flags&FuncFastcall != 0
}
