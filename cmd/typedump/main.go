package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/retrocc/retrocc"
	"github.com/retrocc/retrocc/diag"
	"github.com/retrocc/retrocc/symtab"
	"github.com/retrocc/retrocc/types"
)

func main() {
	var (
		unsignedChar = flag.Bool("unsigned-char", false, "Plain char is unsigned")
		raw          = flag.Bool("raw", false, "Include raw token dumps")
		verbose      = flag.Bool("verbose", false, "Enable debug logging")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		diag.SetLogger(logger)
	}

	sign := retrocc.SignedChars
	if *unsignedChar {
		sign = retrocc.UnsignedChars
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runExplorer(sign); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	dump(os.Stdout, sign, *raw)
}

type demo struct {
	label string
	typ   retrocc.Type
	name  string // non-empty: render as a function signature with this name
}

// wrapArray builds an owned array type around a copy of elem.
func wrapArray(elem retrocc.Type, count uint32) retrocc.Type {
	size := types.Len(elem) + 1
	t := types.Alloc(1 + types.AuxSlots + size)
	t[0] = retrocc.TArray
	types.EncodeAux(t[1:], count)
	copy(t[1+types.AuxSlots:], elem[:size])
	return t
}

// wrapStruct builds a struct type referencing a scratch symbol-table entry.
func wrapStruct(name string, size uint32) retrocc.Type {
	h := symtab.Intern(&symtab.Entry{Name: name, Size: size, Flags: symtab.FlagDef})
	t := types.Alloc(1 + types.AuxSlots + 1)
	t[0] = retrocc.TStruct
	types.EncodeHandle(t[1:], h)
	t[1+types.AuxSlots] = retrocc.TEnd
	return t
}

func catalog(sign retrocc.CharSign) []demo {
	constChar := retrocc.Type{types.DefaultChar(sign) | retrocc.QualConst, retrocc.TEnd}
	intArray := wrapArray(types.TypeInt, 10)

	return []demo{
		{label: "int", typ: types.TypeInt},
		{label: "unsigned int", typ: types.TypeUint},
		{label: "long", typ: types.TypeLong},
		{label: "void", typ: types.TypeVoid},
		{label: "char[12]", typ: types.CharArray(12, sign)},
		{label: "char[]", typ: types.CharArray(0, sign)},
		{label: "const char*", typ: types.PointerTo(constChar)},
		{label: "int[10]", typ: intArray},
		{label: "int[10] decayed", typ: types.ArrayToPointer(intArray)},
		{label: "struct point", typ: wrapStruct("point", 4)},
		{label: "implicit function", typ: types.ImplicitFuncType(), name: "foo"},
	}
}

func dump(w io.Writer, sign retrocc.CharSign, raw bool) {
	reporter := diag.NewReporter()
	diag.SetDefault(reporter)

	fmt.Fprintf(w, "Default char: %s\n\n", sign)

	for _, d := range catalog(sign) {
		rendered := types.Render(d.typ)
		if d.name != "" {
			rendered = types.RenderSignature(d.name, d.typ)
		}
		fmt.Fprintf(w, "%-18s %s\n", d.label, rendered)
		fmt.Fprintf(w, "%-18s size %d, class %s\n", "",
			types.SizeOf(d.typ), types.CodegenClass(d.typ))
		if raw {
			fmt.Fprintf(w, "%-18s raw %s\n", "", types.RenderRaw(d.typ))
		}
		fmt.Fprintln(w)
	}

	if reporter.Count() > 0 {
		fmt.Fprintf(w, "%d diagnostic(s):\n", reporter.Count())
		for _, e := range reporter.Errors() {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
}
