package types

import (
	"fmt"
	"io"
	"strings"

	"github.com/retrocc/retrocc"
	"github.com/retrocc/retrocc/symtab"
)

// renderComp checks for a specific component of the tag. If present, its
// name is printed and the component removed from the returned tag.
func renderComp(b *strings.Builder, t, mask retrocc.Token, name string) retrocc.Token {
	if t&mask == mask {
		b.WriteString(name)
		b.WriteByte(' ')
		t &^= mask
	}
	return t
}

func render(b *strings.Builder, t retrocc.Type) {
	// Walk over the complete string
	for i := 0; ; {
		tok := t[i]
		i++
		if tok == retrocc.TEnd {
			return
		}

		// Qualifiers first
		tok = renderComp(b, tok, retrocc.QualConst, "const")
		tok = renderComp(b, tok, retrocc.QualVolatile, "volatile")

		// Signedness. "signed" is implied for int and long and never
		// written for enum.
		switch tok.Base() {
		case retrocc.BaseInt, retrocc.BaseLong, retrocc.BaseEnum:
			tok &^= retrocc.SignSigned
		default:
			tok = renderComp(b, tok, retrocc.SignSigned, "signed")
		}
		tok = renderComp(b, tok, retrocc.SignUnsigned, "unsigned")

		switch tok.Base() {
		case retrocc.BaseChar:
			b.WriteString("char")
		case retrocc.BaseShort:
			b.WriteString("short")
		case retrocc.BaseInt:
			b.WriteString("int")
		case retrocc.BaseLong:
			b.WriteString("long")
		case retrocc.BaseLongLong:
			b.WriteString("long long")
		case retrocc.BaseFloat:
			b.WriteString("float")
		case retrocc.BaseDouble:
			b.WriteString("double")
		case retrocc.BaseVoid:
			b.WriteString("void")
		case retrocc.BaseEnum:
			b.WriteString("enum")
		case retrocc.BaseStruct:
			fmt.Fprintf(b, "struct %s", symtab.Resolve(DecodeHandle(t[i:])).Name)
			i += AuxSlots
		case retrocc.BaseUnion:
			fmt.Fprintf(b, "union %s", symtab.Resolve(DecodeHandle(t[i:])).Name)
			i += AuxSlots
		case retrocc.BaseArray:
			// Element type first: "array of T" reads as T[n]
			render(b, t[i+AuxSlots:])
			if count := DecodeAux(t[i:]); count == 0 {
				b.WriteString("[]")
			} else {
				fmt.Fprintf(b, "[%d]", count)
			}
			return
		case retrocc.BasePtr:
			render(b, t[i:])
			b.WriteByte('*')
			return
		case retrocc.BaseFunc:
			b.WriteString("function returning ")
			i += AuxSlots
		default:
			fmt.Fprintf(b, "unknown type: %04X", uint16(tok))
		}
	}
}

// Render returns the readable name of the type.
func Render(t retrocc.Type) string {
	var b strings.Builder
	render(&b, t)
	return b.String()
}

// RenderTo writes the readable name of the type to w.
func RenderTo(w io.Writer, t retrocc.Type) error {
	_, err := io.WriteString(w, Render(t))
	return err
}

// RenderSignature renders a full function signature for a function or
// pointer-to-function type: return type, calling convention annotations,
// name and parameter list.
func RenderSignature(name string, t retrocc.Type) string {
	var b strings.Builder

	d := FuncDescOf(t)

	// A pointer-to-function signature describes the pointed-to function.
	if t[0].Unqualified() == retrocc.TPtr {
		t = t[1:]
	}

	render(&b, t)
	if d.Flags&symtab.FuncNear != 0 {
		b.WriteString(" __near__")
	}
	if d.Flags&symtab.FuncFar != 0 {
		b.WriteString(" __far__")
	}
	if d.Flags&symtab.FuncFastcall != 0 {
		b.WriteString(" __fastcall__")
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(" (")

	switch {
	case d.Flags&symtab.FuncVoidParam != 0:
		b.WriteString("void")
	case d.ParamCount == 0 && d.IsVariadic():
		b.WriteString("...")
	default:
		e := d.SymTab.SymHead
		for i := uint32(0); i < d.ParamCount; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			if e.IsRegVar() {
				b.WriteString("register ")
			}
			render(&b, e.Type)
			e = e.NextSym
		}
		if d.IsVariadic() {
			b.WriteString(", ...")
		}
	}

	b.WriteByte(')')
	return b.String()
}

// RenderSignatureTo writes the full function signature to w.
func RenderSignatureTo(w io.Writer, name string, t retrocc.Type) error {
	_, err := io.WriteString(w, RenderSignature(name, t))
	return err
}

// RenderRaw dumps every token up to the sentinel as fixed-width hex. The
// auxiliary payloads are not interpreted.
func RenderRaw(t retrocc.Type) string {
	var b strings.Builder
	for i := 0; t[i] != retrocc.TEnd; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04X", uint16(t[i]))
	}
	return b.String()
}

// RenderRawTo writes the raw dump and a trailing newline to w.
func RenderRawTo(w io.Writer, t retrocc.Type) error {
	_, err := fmt.Fprintln(w, RenderRaw(t))
	return err
}
