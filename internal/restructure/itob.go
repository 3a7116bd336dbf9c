package restructure

import (
	"regexp"
	"strings"

	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/linestream"
)

// typeDefPattern matches a type-definition introducer (§4.RI→B step 5).
var typeDefPattern = regexp.MustCompile(`^(class|struct|typedef|enum|union)\b`)

// enumLikePattern matches an enum header whose direct leaf children are a
// comma-separated member list rather than individually terminated
// statements — the Open Question this codebase resolves literally by
// suppressing `;` insertion under any node so named. Union headers do not
// match, so union members still get `;`.
var enumLikePattern = regexp.MustCompile(`^enum(\s|,|$)`)

// doWhileJoinedPattern matches a `do`/`while` node already folded together
// by the B-to-I join (§4.RI→B step 4's inverse of §4.RB→I step 2).
var doWhileJoinedPattern = regexp.MustCompile(`^do (while\(.+\))$`)

// ToBrace applies the five I-to-B restructuring steps in order (§4.RI→B)
// and returns the rewritten tree plus the renumber map recording every
// do/while split it performed.
func ToBrace(tree []blocktree.Node) ([]blocktree.Node, linestream.RenumberMap) {
	rn := make(linestream.RenumberMap)

	tree = mapWalk(tree, removeColons)
	tree = insertSemicolons(tree, "")
	tree = mapWalk(tree, unnestLabels)
	tree = mapWalk(tree, func(siblings []blocktree.Node) []blocktree.Node {
		return splitDoWhile(siblings, rn)
	})
	tree = mapWalk(tree, splitAliases)

	return tree, rn
}

// removeColons implements step 1: strip a trailing `:` from any node that
// isn't a label or macro. A block-introducer left with no children after
// stripping (an originally empty I-form block) gets a single empty-text
// placeholder child so the brace emitter still renders an empty `{}`.
func removeColons(siblings []blocktree.Node) []blocktree.Node {
	for i := range siblings {
		n := &siblings[i]
		if isMacro(n.Text) || isLabelColon(n.Text) {
			continue
		}
		hadColon := strings.HasSuffix(n.Text, ":")
		n.Text = strings.TrimSuffix(n.Text, ":")
		if hadColon && len(n.Children) == 0 {
			n.Children = []blocktree.Node{blocktree.Synthesized("")}
		}
	}
	return siblings
}

// insertSemicolons implements step 2: every leaf gains a trailing `;`
// unless it already has one, is a macro line, is empty, or is a direct child
// of an enum block (enumLikePattern). parentText is the enclosing block's
// (already colon-stripped) text, empty at the root.
func insertSemicolons(siblings []blocktree.Node, parentText string) []blocktree.Node {
	suppressed := enumLikePattern.MatchString(parentText)
	for i := range siblings {
		n := &siblings[i]
		if n.IsBlock() {
			n.Children = insertSemicolons(n.Children, n.Text)
			continue
		}
		if isMacro(n.Text) || suppressed || strings.HasSuffix(n.Text, ";") || n.Text == "" {
			continue
		}
		n.Text += ";"
	}
	return siblings
}

// unnestLabels implements step 3: an access-modifier or case/default
// label's children are lifted back to sibling position, leaving the label
// itself childless.
func unnestLabels(siblings []blocktree.Node) []blocktree.Node {
	out := make([]blocktree.Node, 0, len(siblings))
	for _, n := range siblings {
		if isLabelColon(n.Text) && len(n.Children) > 0 {
			lifted := n.Children
			n.Children = nil
			out = append(out, n)
			out = append(out, lifted...)
			continue
		}
		out = append(out, n)
	}
	return out
}

// splitDoWhile implements step 4: a `do while(...)` node (folded by the
// B-to-I join) splits back into a bare `do` node retaining its children,
// and a following sibling leaf `while(...);`. The synthesized trailing leaf
// shares the original line number; the renumber map records the line as
// split so the comment merger attaches by original number and the
// merger's fractional-collision handling orders the two records (§9).
func splitDoWhile(siblings []blocktree.Node, rn linestream.RenumberMap) []blocktree.Node {
	out := make([]blocktree.Node, 0, len(siblings))
	for _, n := range siblings {
		m := doWhileJoinedPattern.FindStringSubmatch(n.Text)
		if m == nil {
			out = append(out, n)
			continue
		}
		cond := m[1]
		lineNo := n.LineNo
		n.Text = "do"
		out = append(out, n)
		out = append(out, blocktree.New(lineNo, cond+";"))
		if n.HasLine() {
			rn.Split(lineNo)
		}
	}
	return out
}

// splitAliases implements step 5: a type-definition node whose header
// carries a joined alias list (comma-separated, with no parents clause —
// the shape §4.RB→I step 1 produces) emits the bare introducer, followed
// by a sibling leaf with the alias list (or a bare `;` if there was none),
// positioned immediately after where the emitter will close the block.
func splitAliases(siblings []blocktree.Node) []blocktree.Node {
	out := make([]blocktree.Node, 0, len(siblings))
	for _, n := range siblings {
		if !n.IsBlock() || !typeDefPattern.MatchString(n.Text) {
			out = append(out, n)
			continue
		}
		bareHeader, trailerText := splitAliasHeader(n.Text)
		n.Text = bareHeader
		out = append(out, n)
		out = append(out, blocktree.Synthesized(trailerText))
	}
	return out
}

// splitAliasHeader splits a type-definition header at its first comma,
// provided the header carries no `:` parents clause (the one ambiguous
// case this codebase does not attempt to disentangle, see DESIGN.md).
// Absent a splittable comma, it returns the header unchanged and a bare
// `;` trailer.
func splitAliasHeader(text string) (header, trailer string) {
	if strings.Contains(text, ":") {
		return text, ";"
	}
	if idx := strings.Index(text, ","); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+1:]) + ";"
	}
	return text, ";"
}
