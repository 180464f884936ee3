package wasmtype

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/sexpr"
)

// FuncType is a function signature: an ordered list of parameter types
// and a single result type. Multi-value results are not supported
// (spec.md §3): the binary encoding always writes a literal result
// count of 1.
type FuncType struct {
	index  int
	Params []ValueType
	Result ValueType
}

// newFuncType backs NewFuncType; the caller (normally ModuleBuilder) is
// responsible for assigning the dense zero-based type index.
func newFuncType(index int, result ValueType) *FuncType {
	return &FuncType{index: index, Result: result}
}

func (t *FuncType) Index() int { return t.index }

// AddParam appends a parameter type and returns the receiver, so
// callers can chain: ft.AddParam(a).AddParam(b).
func (t *FuncType) AddParam(v ValueType) *FuncType {
	t.Params = append(t.Params, v)
	return t
}

func (t *FuncType) Text() sexpr.Node {
	l := sexpr.NewList(sexpr.Symbol("func"))
	for _, p := range t.Params {
		l.Add(sexpr.NewList(sexpr.Symbol("param"), p.Text()))
	}
	l.Add(sexpr.NewList(sexpr.Symbol("result"), t.Result.Text()))
	return l
}

func (t *FuncType) Binary(w *bytestream.ByteWriter) {
	w.WriteU8(0x60)
	w.WriteUnsigned(uint64(len(t.Params)))
	for _, p := range t.Params {
		p.Binary(w)
	}
	w.WriteU8(1) // literal result count; multi-value is not supported
	t.Result.Binary(w)
}

// StructType is an ordered sequence of Fields, each carrying its own
// zero-based field index matching insertion order (spec.md §3).
type StructType struct {
	index  int
	Fields []*Field
}

func newStructType(index int) *StructType {
	return &StructType{index: index}
}

func (t *StructType) Index() int { return t.index }

// AddField appends a field of the given FieldType and returns it.
func (t *StructType) AddField(ft FieldType) *Field {
	f := &Field{Type: ft, Index: len(t.Fields)}
	t.Fields = append(t.Fields, f)
	return f
}

func (t *StructType) Text() sexpr.Node {
	l := sexpr.NewList(sexpr.Symbol("struct"))
	for _, f := range t.Fields {
		l.Add(f.Text())
	}
	return l
}

func (t *StructType) Binary(w *bytestream.ByteWriter) {
	w.WriteU8(0x5F)
	w.WriteUnsigned(uint64(len(t.Fields)))
	for _, f := range t.Fields {
		f.Binary(w)
	}
}

// ArrayType is a single FieldType describing every element of the array.
type ArrayType struct {
	index int
	Elem  FieldType
}

func newArrayType(index int, elem FieldType) *ArrayType {
	return &ArrayType{index: index, Elem: elem}
}

func (t *ArrayType) Index() int { return t.index }

func (t *ArrayType) Text() sexpr.Node {
	return sexpr.NewList(sexpr.Symbol("array"), t.Elem.Text())
}

func (t *ArrayType) Binary(w *bytestream.ByteWriter) {
	w.WriteU8(0x5E)
	t.Elem.Binary(w)
}

// NewFuncType, NewStructType, and NewArrayType construct composite
// types with the given index. ModuleBuilder calls them with the next
// free index in its type list; tests call them directly without going
// through a ModuleBuilder. The index is not checked against any builder.
func NewFuncType(index int, result ValueType) *FuncType { return newFuncType(index, result) }
func NewStructType(index int) *StructType               { return newStructType(index) }
func NewArrayType(index int, elem FieldType) *ArrayType { return newArrayType(index, elem) }
