package sexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrz-wasm/gcbuilder/sexpr"
)

func TestSymbolAndInteger(t *testing.T) {
	require.Equal(t, "i32", sexpr.Symbol("i32").String())
	require.Equal(t, "42", sexpr.Integer(42).String())
	require.Equal(t, "-1", sexpr.Integer(-1).String())
}

func TestListNesting(t *testing.T) {
	l := sexpr.NewList(
		sexpr.Symbol("func"),
		sexpr.NewList(sexpr.Symbol("param"), sexpr.Symbol("i32")),
		sexpr.NewList(sexpr.Symbol("result"), sexpr.Symbol("i32")),
	)
	require.Equal(t, "(func (param i32) (result i32))", l.String())
}

func TestListAddIsIncremental(t *testing.T) {
	l := sexpr.NewList(sexpr.Symbol("module"))
	l.Add(sexpr.Symbol("a")).Add(sexpr.Symbol("b"))
	require.Equal(t, "(module a b)", l.String())
}
