// Package instr implements the seed instruction set from spec.md §4.3:
// local.get, local.set, i32.const, i32.add, and if/else/end, plus the
// InstructionList they're composed into. Every Instruction renders
// itself as text (an sexpr.Node) and as binary (onto a
// bytestream.ByteWriter), mirroring the same two-capability contract
// wasmtype uses for its type nodes.
package instr

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/sexpr"
)

// Instruction is the capability every seed opcode implements.
type Instruction interface {
	Text() sexpr.Node
	Binary(w *bytestream.ByteWriter)
}

// LocalRef is the minimal view of a Local an instruction needs: its
// index within the enclosing function's local space and its display
// name for text output. wasmmodule.Local satisfies this without instr
// having to import wasmmodule, which would otherwise cycle back here.
type LocalRef interface {
	LocalIndex() int
	LocalName() string
}

func localText(sym string, l LocalRef) sexpr.Node {
	name := l.LocalName()
	if name == "" {
		return sexpr.NewList(sexpr.Symbol(sym), sexpr.Integer(l.LocalIndex()))
	}
	return sexpr.NewList(sexpr.Symbol(sym), sexpr.Symbol("$"+name))
}

// LocalGet reads the value of local l and pushes it onto the stack.
type LocalGet struct{ Local LocalRef }

func (i LocalGet) Text() sexpr.Node { return localText("local.get", i.Local) }

func (i LocalGet) Binary(w *bytestream.ByteWriter) {
	w.WriteU8(0x20)
	w.WriteUnsigned(uint64(i.Local.LocalIndex()))
}

// LocalSet pops the top of the stack into local l.
type LocalSet struct{ Local LocalRef }

func (i LocalSet) Text() sexpr.Node { return localText("local.set", i.Local) }

func (i LocalSet) Binary(w *bytestream.ByteWriter) {
	w.WriteU8(0x21)
	w.WriteUnsigned(uint64(i.Local.LocalIndex()))
}

// I32Const pushes a constant i32 value onto the stack.
type I32Const struct{ Value uint32 }

func (i I32Const) Text() sexpr.Node {
	return sexpr.NewList(sexpr.Symbol("i32.const"), sexpr.Integer(int64(i.Value)))
}

func (i I32Const) Binary(w *bytestream.ByteWriter) {
	w.WriteU8(0x41)
	w.WriteUnsigned(uint64(i.Value))
}

// I32Add pops two i32 operands and pushes their sum.
type I32Add struct{}

func (I32Add) Text() sexpr.Node { return sexpr.Symbol("i32.add") }

func (I32Add) Binary(w *bytestream.ByteWriter) { w.WriteU8(0x6A) }

// If runs Then if the top-of-stack condition is nonzero, Else
// otherwise. Both branches yield no result (blocktype 0x40); the seed
// set has no value-carrying if.
type If struct {
	Then InstructionList
	Else InstructionList
}

func (i If) Text() sexpr.Node {
	l := sexpr.NewList(sexpr.Symbol("if"))
	l.Add(sexpr.NewList(append([]sexpr.Node{sexpr.Symbol("then")}, i.Then.nodes()...)...))
	if len(i.Else) > 0 {
		l.Add(sexpr.NewList(append([]sexpr.Node{sexpr.Symbol("else")}, i.Else.nodes()...)...))
	}
	return l
}

func (i If) Binary(w *bytestream.ByteWriter) {
	w.WriteU8(0x04)
	w.WriteU8(0x40) // blocktype: no result type
	i.Then.Binary(w)
	if len(i.Else) > 0 {
		w.WriteU8(0x05)
		i.Else.Binary(w)
	}
	w.WriteU8(0x0B)
}

// InstructionList is an ordered sequence of Instructions. Its binary
// form is concatenation; its text form is a flat s-expression list.
type InstructionList []Instruction

func (l InstructionList) nodes() []sexpr.Node {
	nodes := make([]sexpr.Node, len(l))
	for i, instr := range l {
		nodes[i] = instr.Text()
	}
	return nodes
}

func (l InstructionList) Text() sexpr.Node {
	return sexpr.NewList(l.nodes()...)
}

func (l InstructionList) Binary(w *bytestream.ByteWriter) {
	for _, instr := range l {
		instr.Binary(w)
	}
}
