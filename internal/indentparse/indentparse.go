// Package indentparse implements the I-form parser (§4.PI): it turns the
// already tab-expanded indent-syntax code stream into a block tree purely
// from each line's leading-space count, descending the tree by repeatedly
// taking the last child until the target depth is reached.
package indentparse

import (
	"strings"

	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/linestream"
)

// Parse builds a block tree from an I-form code stream (§4.PI). It never
// fails: a line indented deeper than any reachable parent is appended at
// the deepest level actually reachable instead (§7).
func Parse(lines []linestream.CodeLine) []blocktree.Node {
	var roots []blocktree.Node

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		indent, content := splitIndent(line.Text)
		depth := indent / linestream.IndentWidth

		for strings.HasSuffix(content, `\`) && i+1 < len(lines) {
			content = strings.TrimSuffix(content, `\`)
			i++
			next := lines[i]
			nextIndent, nextContent := splitIndent(next.Text)
			rel := nextIndent - indent
			if rel < 0 {
				rel = 0
			}
			content += strings.Repeat(" ", rel) + nextContent
		}

		insertAt(&roots, depth, blocktree.New(line.LineNo, content))
	}

	return roots
}

// insertAt descends from roots by repeatedly taking the last child, depth
// times, and appends node there. If a line's indent outruns the tree it
// would need to nest into, it clamps to the deepest level actually
// reachable rather than fail.
func insertAt(roots *[]blocktree.Node, depth int, node blocktree.Node) {
	cur := roots
	for d := 0; d < depth; d++ {
		if len(*cur) == 0 {
			break
		}
		cur = &(*cur)[len(*cur)-1].Children
	}
	*cur = append(*cur, node)
}

// splitIndent separates a code line's leading-space run from its content.
// Tabs are already expanded to spaces by the lexical splitter, so only
// spaces are counted (§4.L, §4.PI).
func splitIndent(text string) (leadCount int, content string) {
	i := 0
	for i < len(text) && text[i] == ' ' {
		i++
	}
	return i, text[i:]
}
