package braceparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/braceparse"
	"github.com/thinclang/thinc/internal/linestream"
)

func code(lines ...string) []linestream.CodeLine {
	out := make([]linestream.CodeLine, len(lines))
	for i, l := range lines {
		out[i] = linestream.CodeLine{LineNo: i, Text: l}
	}
	return out
}

func TestParseSimpleBlock(t *testing.T) {
	tree := braceparse.Parse(code(
		"if (x) {",
		"foo();",
		"}",
	))

	assert.Equal(t, "#0 \"if (x)\"\n  #1 \"foo();\"", blocktree.String(tree))
}

func TestParseHeaderOnPriorLineKeepsPreviousLineNumber(t *testing.T) {
	tree := braceparse.Parse(code(
		"class Foo",
		"{",
		"int a;",
		"}",
	))

	assert.Equal(t, 0, tree[0].LineNo, "the { alone on line 1 attributes to the header's line")
	assert.Equal(t, "class Foo", tree[0].Text)
}

func TestParseSemicolonInsideParensDoesNotFlush(t *testing.T) {
	tree := braceparse.Parse(code(
		"for (i = 0; i < 10; i++) {",
		"sum += i;",
		"}",
	))

	assert.Equal(t, "for (i = 0; i < 10; i++)", tree[0].Text)
}

func TestParseAccessModifierColonFlushes(t *testing.T) {
	tree := braceparse.Parse(code(
		"class Foo {",
		"public:",
		"int a;",
		"}",
	))

	assert.Equal(t, "public:", tree[0].Children[0].Text)
	assert.Equal(t, "int a;", tree[0].Children[1].Text)
}

func TestParseScopeResolutionColonIsNotStructural(t *testing.T) {
	tree := braceparse.Parse(code("Foo::bar();"))
	assert.Equal(t, "Foo::bar();", tree[0].Text)
}

func TestParseTernaryColonIsNotStructural(t *testing.T) {
	tree := braceparse.Parse(code("x = cond ? a : b;"))
	assert.Equal(t, "x = cond ? a : b;", tree[0].Text)
}

func TestParseStringHidesBraces(t *testing.T) {
	tree := braceparse.Parse(code(`s = "{ not a block }";`))
	assert.Len(t, tree, 1)
	assert.Equal(t, `s = "{ not a block }";`, tree[0].Text)
}

func TestParseMacroPassthrough(t *testing.T) {
	tree := braceparse.Parse(code(
		"#define MAX 10",
		"int x;",
	))
	assert.Equal(t, "#define MAX 10", tree[0].Text)
	assert.Equal(t, "int x;", tree[1].Text)
}

func TestParseBackslashContinuationGluesLines(t *testing.T) {
	tree := braceparse.Parse(code(
		`int x = 1 + \`,
		`2;`,
	))
	assert.Equal(t, "int x = 1 + 2;", tree[0].Text)
	assert.Equal(t, 0, tree[0].LineNo)
}

func TestParseMacroLineIgnoresTrailingBackslash(t *testing.T) {
	tree := braceparse.Parse(code(
		`#define BIG(x) \`,
		`int y;`,
	))
	assert.Equal(t, `#define BIG(x) \`, tree[0].Text)
	assert.Equal(t, "int y;", tree[1].Text)
}

func TestParseUnclosedBraceImplicitlyClosesAtEOF(t *testing.T) {
	tree := braceparse.Parse(code(
		"if (x) {",
		"foo();",
	))
	assert.Len(t, tree, 1)
	assert.Len(t, tree[0].Children, 1)
}

func TestParseDoubleSpaceCollapses(t *testing.T) {
	tree := braceparse.Parse(code("int   x;"))
	assert.Equal(t, "int x;", tree[0].Text)
}
