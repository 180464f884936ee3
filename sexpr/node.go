// Package sexpr provides the embedder-supplied s-expression node
// factory spec.md §6 calls for: a small tree of symbols, integers, and
// lists used as this core's text output. Only the tree shape is part
// of the contract; String renders one reasonable default layout.
package sexpr

import (
	"strconv"
	"strings"
)

// Node is anything that can appear in the text output tree.
type Node interface {
	node()
	String() string
}

// Symbol is a bare atom such as i32, func, or $main.
type Symbol string

func (Symbol) node() {}

func (s Symbol) String() string { return string(s) }

// Integer is an integer atom, used for type/function indices and RTT
// depths.
type Integer int64

func (Integer) node() {}

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

// List is a parenthesized sequence of child nodes.
type List struct {
	Items []Node
}

func (*List) node() {}

// NewList builds a List from the given items, for the common case of
// constructing one inline.
func NewList(items ...Node) *List {
	return &List{Items: items}
}

// Add appends items to the list and returns the list, so callers can
// build it up incrementally: l.Add(a).Add(b).
func (l *List) Add(items ...Node) *List {
	l.Items = append(l.Items, items...)
	return l
}

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
