package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/emit"
)

func TestBraceEmitsSynthesizedClosingBrace(t *testing.T) {
	tree := []blocktree.Node{
		blocktree.New(0, "if (x)").WithChildren([]blocktree.Node{
			blocktree.New(1, "foo();"),
		}),
	}
	got := emit.Brace(tree)

	assert.Equal(t, []emit.Record{
		{LineNo: 0, Indent: 0, Text: "if (x) {"},
		{LineNo: 1, Indent: 1, Text: "foo();"},
		{LineNo: blocktree.NoLine, Indent: 0, Text: "}"},
	}, got)
}

func TestIndentEmitsNoBraces(t *testing.T) {
	tree := []blocktree.Node{
		blocktree.New(0, "if (x):").WithChildren([]blocktree.Node{
			blocktree.New(1, "foo()"),
		}),
	}
	got := emit.Indent(tree)

	assert.Equal(t, []emit.Record{
		{LineNo: 0, Indent: 0, Text: "if (x):"},
		{LineNo: 1, Indent: 1, Text: "foo()"},
	}, got)
}

func TestBraceNestedBlocksCloseInOrder(t *testing.T) {
	tree := []blocktree.Node{
		blocktree.New(0, "class A").WithChildren([]blocktree.Node{
			blocktree.New(1, "if (x)").WithChildren([]blocktree.Node{
				blocktree.New(2, "foo();"),
			}),
		}),
	}
	got := emit.Brace(tree)

	assert.Equal(t, []string{"class A {", "if (x) {", "foo();", "}", "}"}, textsOf(got))
}

func textsOf(records []emit.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Text
	}
	return out
}
