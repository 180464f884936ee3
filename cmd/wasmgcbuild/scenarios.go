package main

import (
	"github.com/andrz-wasm/gcbuilder/instr"
	"github.com/andrz-wasm/gcbuilder/wasmmodule"
	"github.com/andrz-wasm/gcbuilder/wasmtype"
)

// scenario is one of the fixed named modules this driver knows how to
// build. Choosing among these, rather than parsing arbitrary input, is
// what keeps this driver a demonstrative harness instead of a
// source-language front end.
type scenario struct {
	name  string
	desc  string
	build func() *wasmmodule.ModuleBuilder
}

var scenarios = []scenario{
	{
		name: "empty",
		desc: "a module with no types and no functions",
		build: func() *wasmmodule.ModuleBuilder {
			return wasmmodule.New()
		},
	},
	{
		name: "func-type",
		desc: "one function type () -> i32, no functions",
		build: func() *wasmmodule.ModuleBuilder {
			b := wasmmodule.New()
			b.MakeFuncType(b.I32)
			return b
		},
	},
	{
		name: "func-body",
		desc: "one function $main: () -> i32 returning i32.const 42",
		build: func() *wasmmodule.ModuleBuilder {
			b := wasmmodule.New()
			ft := b.MakeFuncType(b.I32)
			main := b.AddFunction("main", ft)
			main.Body = instr.InstructionList{instr.I32Const{Value: 42}}
			return b
		},
	},
	{
		name: "struct-mut-field",
		desc: "a struct type with one mutable i32 field",
		build: func() *wasmmodule.ModuleBuilder {
			b := wasmmodule.New()
			st := b.MakeStructType()
			st.AddField(b.MakeFieldType(b.I32, true))
			return b
		},
	},
	{
		name: "array-packed-i8",
		desc: "an immutable array type of packed i8 elements",
		build: func() *wasmmodule.ModuleBuilder {
			b := wasmmodule.New()
			b.MakeArrayType(b.MakePackedFieldType(wasmtype.PackedI8, false))
			return b
		},
	},
	{
		name: "if-else",
		desc: "one function using local.get, local.set, and if/else",
		build: func() *wasmmodule.ModuleBuilder {
			b := wasmmodule.New()
			ft := b.MakeFuncType(b.I32)
			ft.AddParam(b.I32)
			f := b.AddFunction("choose", ft)
			cond := f.Param(0)
			acc := f.AddLocal("acc", b.I32)
			f.Body = instr.InstructionList{
				instr.LocalGet{Local: cond},
				instr.If{
					Then: instr.InstructionList{
						instr.I32Const{Value: 1},
						instr.LocalSet{Local: acc},
					},
					Else: instr.InstructionList{
						instr.I32Const{Value: 0},
						instr.LocalSet{Local: acc},
					},
				},
				instr.LocalGet{Local: acc},
			}
			return b
		},
	},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}
