package cosmetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinclang/thinc/internal/cosmetic"
	"github.com/thinclang/thinc/internal/merge"
)

func TestRenderExpandsBlockCommentAcrossLines(t *testing.T) {
	records := []merge.Record{
		{Indent: 0, Code: "int x;", BlockComment: []string{"/* a", "b */"}},
	}
	got := cosmetic.Render(records)
	assert.Equal(t, "int x; /* a\nb */\n", got)
}

func TestRenderJoinsLineCommentOntoCode(t *testing.T) {
	records := []merge.Record{
		{Indent: 1, Code: "int x;", LineComment: "// note"},
	}
	got := cosmetic.Render(records)
	assert.Equal(t, "    int x; // note\n", got)
}

func TestRenderInsertsBlankOnCodeCommentTransition(t *testing.T) {
	records := []merge.Record{
		{Indent: 0, Code: "int x;"},
		{Indent: 0, LineComment: "// trailing"},
	}
	got := cosmetic.Render(records)
	assert.Equal(t, "int x;\n\n// trailing\n", got)
}

func TestRenderInsertsBlankOnDedent(t *testing.T) {
	records := []merge.Record{
		{Indent: 1, Code: "foo();"},
		{Indent: 0, Code: "bar();"},
	}
	got := cosmetic.Render(records)
	assert.Equal(t, "    foo();\n\nbar();\n", got)
}

func TestRenderDragsBackSynthesizedAliasTrailerOntoClosingBrace(t *testing.T) {
	records := []merge.Record{
		{Indent: 0, Code: "struct {"},
		{Indent: 1, Code: "int x;"},
		{Indent: 0, Code: "}", Synthesized: true},
		{Indent: 0, Code: "Foo, Bar;", Synthesized: true},
	}
	got := cosmetic.Render(records)
	assert.Equal(t, "struct {\n    int x;\n} Foo, Bar;\n", got)
}

func TestRenderDragsBackBareTerminatorWithoutSpace(t *testing.T) {
	records := []merge.Record{
		{Indent: 0, Code: "struct {"},
		{Indent: 1, Code: "int x;"},
		{Indent: 0, Code: "}", Synthesized: true},
		{Indent: 0, Code: ";", Synthesized: true},
	}
	got := cosmetic.Render(records)
	assert.Equal(t, "struct {\n    int x;\n};\n", got)
}

func TestRenderNoBlankBeforeTopLevelCloseBrace(t *testing.T) {
	records := []merge.Record{
		{Indent: 0, Code: "int main() {"},
		{Indent: 1, Code: "return x;"},
		{Indent: 0, Code: "}", Synthesized: true},
	}
	got := cosmetic.Render(records)
	assert.Equal(t, "int main() {\n    return x;\n}\n", got)
}

func TestRenderNoBlankBetweenSameLevelCode(t *testing.T) {
	records := []merge.Record{
		{Indent: 0, Code: "int x;"},
		{Indent: 0, Code: "int y;"},
	}
	got := cosmetic.Render(records)
	assert.Equal(t, "int x;\nint y;\n", got)
}
