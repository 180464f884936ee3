package wasmmodule

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/instr"
	"github.com/andrz-wasm/gcbuilder/sexpr"
	"github.com/andrz-wasm/gcbuilder/wasmerr"
	"github.com/andrz-wasm/gcbuilder/wasmtype"
)

// Function is a named function with an assigned index, a reference to
// its already-registered FuncType, its parameter/local list, and an
// optional instruction-list body (spec.md §3, "Function").
type Function struct {
	Name  string
	index int
	Type  *wasmtype.FuncType
	Body  instr.InstructionList

	locals   []*Local
	sawLocal bool
}

func newFunction(index int, name string, ft *wasmtype.FuncType) *Function {
	f := &Function{Name: name, index: index, Type: ft}
	for _, p := range ft.Params {
		f.locals = append(f.locals, &Local{Kind: Param, Type: p, index: len(f.locals)})
	}
	return f
}

func (f *Function) Index() int { return f.index }

// AddParam appends a named parameter local. It panics if any non-param
// Local has already been added, since parameters must precede locals
// (spec.md §3, "Local").
func (f *Function) AddParam(name string, t wasmtype.ValueType) *Local {
	if f.sawLocal {
		wasmerr.Violate("Function.AddParam: cannot add a Param after a Local")
	}
	l := &Local{Kind: Param, Type: t, Name: name, index: len(f.locals)}
	f.locals = append(f.locals, l)
	return l
}

// AddLocal appends an additional (non-param) local.
func (f *Function) AddLocal(name string, t wasmtype.ValueType) *Local {
	f.sawLocal = true
	l := &Local{Kind: LocalVar, Type: t, Name: name, index: len(f.locals)}
	f.locals = append(f.locals, l)
	return l
}

// Param returns the i'th parameter local, in declaration order.
func (f *Function) Param(i int) *Local { return f.locals[i] }

// Locals returns the non-param locals only, in insertion order — the
// group written by the code section (spec.md §4.4).
func (f *Function) Locals() []*Local {
	var out []*Local
	for _, l := range f.locals {
		if l.Kind == LocalVar {
			out = append(out, l)
		}
	}
	return out
}

func (f *Function) Text() sexpr.Node {
	l := sexpr.NewList(sexpr.Symbol("func"))
	if f.Name != "" {
		l.Add(sexpr.Symbol("$" + f.Name))
	}
	l.Add(sexpr.NewList(sexpr.Symbol("type"), sexpr.Integer(f.Type.Index())))
	for _, local := range f.Locals() {
		entry := sexpr.NewList(sexpr.Symbol("local"))
		if local.Name != "" {
			entry.Add(sexpr.Symbol("$" + local.Name))
		}
		entry.Add(local.Type.Text())
		l.Add(entry)
	}
	if f.Body != nil {
		l.Add(f.Body.Text())
	}
	return l
}

// Binary writes this function's code-section entry: the local group
// table, the body instructions, and the trailing end opcode. Callers
// are expected to wrap this in a scoped length prefix themselves
// (spec.md §4.4, §4.5).
func (f *Function) Binary(w *bytestream.ByteWriter) {
	locals := f.Locals()
	w.WriteUnsigned(uint64(len(locals)))
	for _, local := range locals {
		w.WriteUnsigned(1) // one group per local; run-length merging is unused
		local.Type.Binary(w)
	}
	f.Body.Binary(w)
	w.WriteU8(0x0B)
}
