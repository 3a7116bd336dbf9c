// Package emit implements the two tree-to-rendered-stream emitters (§4.EB,
// §4.EI): an in-order walk that turns a block tree into a flat sequence of
// indented text lines, ready for the comment merger to reattach comments
// to by original line number.
package emit

import "github.com/thinclang/thinc/internal/blocktree"

// Record is one line of the rendered stream, pre-merge: an indent depth, a
// code text, and the original source line it traces back to (or
// blocktree.NoLine for a synthesized line such as a closing brace) (§3
// "Rendered stream").
type Record struct {
	LineNo int
	Indent int
	Text   string
}

// Brace renders tree with braces (§4.EB): a non-leaf emits `text {` at its
// depth, recurses one level deeper, then emits a synthesized `}` back at
// its own depth; a leaf emits its text as-is.
func Brace(tree []blocktree.Node) []Record {
	var out []Record
	walkBrace(tree, 0, &out)
	return out
}

func walkBrace(nodes []blocktree.Node, depth int, out *[]Record) {
	for _, n := range nodes {
		if !n.IsBlock() {
			*out = append(*out, Record{LineNo: n.LineNo, Indent: depth, Text: n.Text})
			continue
		}
		*out = append(*out, Record{LineNo: n.LineNo, Indent: depth, Text: n.Text + " {"})
		walkBrace(n.Children, depth+1, out)
		*out = append(*out, Record{LineNo: blocktree.NoLine, Indent: depth, Text: "}"})
	}
}

// Indent renders tree with indentation (§4.EI): every node, leaf or not,
// emits its text as-is at its depth; no braces, no semicolons.
func Indent(tree []blocktree.Node) []Record {
	var out []Record
	walkIndent(tree, 0, &out)
	return out
}

func walkIndent(nodes []blocktree.Node, depth int, out *[]Record) {
	for _, n := range nodes {
		*out = append(*out, Record{LineNo: n.LineNo, Indent: depth, Text: n.Text})
		walkIndent(n.Children, depth+1, out)
	}
}
