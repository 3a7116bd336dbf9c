package indentparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/indentparse"
	"github.com/thinclang/thinc/internal/linestream"
)

func code(lines ...string) []linestream.CodeLine {
	out := make([]linestream.CodeLine, len(lines))
	for i, l := range lines {
		out[i] = linestream.CodeLine{LineNo: i, Text: l}
	}
	return out
}

func TestParseNestsByIndentLevel(t *testing.T) {
	tree := indentparse.Parse(code(
		"if cond:",
		"    foo()",
		"    bar()",
	))

	assert.Equal(t, "#0 \"if cond:\"\n  #1 \"foo()\"\n  #2 \"bar()\"", blocktree.String(tree))
}

func TestParseDedentReturnsToParent(t *testing.T) {
	tree := indentparse.Parse(code(
		"if a:",
		"    x()",
		"y()",
	))

	assert.Len(t, tree, 2)
	assert.Equal(t, "y()", tree[1].Text)
	assert.Len(t, tree[0].Children, 1)
}

func TestParseDeepNesting(t *testing.T) {
	tree := indentparse.Parse(code(
		"class A:",
		"    struct B:",
		"        int c",
	))

	assert.Equal(t, "class A:", tree[0].Text)
	assert.Equal(t, "struct B:", tree[0].Children[0].Text)
	assert.Equal(t, "int c", tree[0].Children[0].Children[0].Text)
}

func TestParseBackslashContinuationJoinsAtSameIndent(t *testing.T) {
	tree := indentparse.Parse(code(
		`x = 1 + \`,
		`2`,
	))
	assert.Equal(t, "x = 1 + 2", tree[0].Text)
	assert.Equal(t, 0, tree[0].LineNo)
	assert.Len(t, tree, 1)
}

func TestParseBackslashContinuationPreservesExtraRelativeIndent(t *testing.T) {
	// The continuation line is written one level deeper than the line it
	// continues, purely for readability; that extra offset survives into
	// the joined text instead of being collapsed away.
	tree := indentparse.Parse(code(
		`x = 1 + \`,
		`    2`,
	))
	assert.Equal(t, "x = 1 +     2", tree[0].Text)
}

func TestParseOverIndentedLineClampsToDeepestReachable(t *testing.T) {
	// Nothing actually opened a block before y(), so its excess indent is
	// clamped: it lands as deep as the tree actually reaches instead of
	// failing or inventing intermediate levels.
	tree := indentparse.Parse(code(
		"x()",
		"        y()",
	))
	assert.Len(t, tree, 1)
	assert.Equal(t, "x()", tree[0].Text)
	assert.Equal(t, []string{"y()"}, textsOf(tree[0].Children))
}

func textsOf(nodes []blocktree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Text
	}
	return out
}
