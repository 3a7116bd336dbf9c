// Package blocktree implements the direction-agnostic intermediate tree
// representation shared by both parsers, both restructurers, and both
// emitters: a rose tree whose nodes carry an optional source line number, a
// single-line text payload, and an ordered sequence of children.
//
// A node with children represents a block-introducing line; a childless node
// is a leaf statement. Depth is never stored explicitly — it is always the
// structural nesting depth of a node within its tree.
package blocktree

import (
	"fmt"
	"io"
	"strings"
)

// NoLine is the sentinel LineNo value for a synthesized node: one that never
// came from a source line (e.g. a B-form emitter's closing brace).
const NoLine = -1

// Node is one entry in a block tree. The zero Node is an empty leaf on line
// 0; a synthesized node is built with Synthesized, which sets LineNo to
// NoLine.
type Node struct {
	LineNo   int // NoLine if synthesized
	Text     string
	Children []Node
}

// New returns a leaf node sourced from the given line.
func New(lineNo int, text string) Node {
	return Node{LineNo: lineNo, Text: text}
}

// Synthesized returns a leaf node with no source line, e.g. a closing brace.
func Synthesized(text string) Node {
	return Node{LineNo: NoLine, Text: text}
}

// HasLine reports whether the receiver has a concrete source line number.
func (n Node) HasLine() bool { return n.LineNo != NoLine }

// IsBlock reports whether the receiver introduces a block, i.e. has children.
func (n Node) IsBlock() bool { return len(n.Children) > 0 }

// Leaf returns a copy of the receiver with its Children cleared.
func (n Node) Leaf() Node {
	n.Children = nil
	return n
}

// WithChildren returns a copy of the receiver with Children replaced.
func (n Node) WithChildren(children []Node) Node {
	n.Children = children
	return n
}

// WithText returns a copy of the receiver with Text replaced.
func (n Node) WithText(text string) Node {
	n.Text = text
	return n
}

// Walker is called once per node during Walk, in pre-order, along with the
// node's depth (0 for roots of the walked sequence).
type Walker func(n Node, depth int)

// Walk visits every node in nodes and their descendants, pre-order.
func Walk(nodes []Node, depth int, fn Walker) {
	for _, n := range nodes {
		fn(n, depth)
		Walk(n.Children, depth+1, fn)
	}
}

// Count returns the total number of nodes in nodes and all descendants.
func Count(nodes []Node) int {
	n := 0
	Walk(nodes, 0, func(Node, int) { n++ })
	return n
}

// Format implements fmt.Formatter, printing a single-line "Text" form for
// %v, and a full indented multi-line dump for %+v.
func (n Node) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			formatTree(f, []Node{n}, 0)
			return
		}
		fmt.Fprintf(f, "%q", n.Text)
	default:
		fmt.Fprintf(f, "%%!%c(blocktree.Node)", verb)
	}
}

func formatTree(f fmt.State, nodes []Node, depth int) {
	for i, n := range nodes {
		if i > 0 || depth > 0 {
			fmt.Fprint(f, "\n")
		}
		fmt.Fprint(f, strings.Repeat("  ", depth))
		if n.HasLine() {
			fmt.Fprintf(f, "#%d %q", n.LineNo, n.Text)
		} else {
			fmt.Fprintf(f, "#- %q", n.Text)
		}
		formatTree(f, n.Children, depth+1)
	}
}

// String returns the %+v tree dump of nodes, for convenient use in tests and
// error messages.
func String(nodes []Node) string {
	var buf strings.Builder
	formatTree(stringState{&buf, true}, nodes, 0)
	return buf.String()
}

// stringState is a minimal fmt.State adapter used only by String, so that
// formatTree can be driven outside of an actual fmt verb dispatch.
type stringState struct {
	io.Writer
	plus bool
}

func (s stringState) Width() (int, bool)     { return 0, false }
func (s stringState) Precision() (int, bool) { return 0, false }
func (s stringState) Flag(c int) bool        { return c == '+' && s.plus }
