package restructure

import (
	"strings"

	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/linestream"
)

// ToIndent applies the five B-to-I restructuring steps in order (§4.RB→I)
// and returns the rewritten tree plus the renumber map recording every
// alias/do-while join it performed.
func ToIndent(tree []blocktree.Node) ([]blocktree.Node, linestream.RenumberMap) {
	rn := make(linestream.RenumberMap)

	tree = mapWalk(tree, func(siblings []blocktree.Node) []blocktree.Node {
		return joinAliases(siblings, rn)
	})
	tree = mapWalk(tree, func(siblings []blocktree.Node) []blocktree.Node {
		return joinDoWhile(siblings, rn)
	})
	tree = mapWalk(tree, nestLabels)

	eachNode(tree, stripTrailingSemicolon)
	tree = mapWalk(tree, insertColons)

	return tree, rn
}

// joinAliases implements step 1: a type-definition introducer immediately
// followed by a bare, `;`-terminated identifier list absorbs that sibling
// into its own header text, and the absorbed line joins the leader's line
// in the renumber map.
func joinAliases(siblings []blocktree.Node, rn linestream.RenumberMap) []blocktree.Node {
	out := make([]blocktree.Node, 0, len(siblings))
	for i := 0; i < len(siblings); i++ {
		leader := siblings[i]
		if i+1 < len(siblings) && isAliasLeader(leader) {
			follower := siblings[i+1]
			if len(follower.Children) == 0 && aliasFollowerPattern.MatchString(strings.TrimSpace(follower.Text)) {
				aliases := strings.TrimSuffix(strings.TrimSpace(follower.Text), ";")
				leader.Text = insertAliases(leader.Text, aliases)
				if leader.HasLine() && follower.HasLine() {
					rn.Join(follower.LineNo, leader.LineNo)
				}
				out = append(out, leader)
				i++
				continue
			}
		}
		out = append(out, leader)
	}
	return out
}

func isAliasLeader(n blocktree.Node) bool {
	return aliasLeaderPattern.MatchString(n.Text) && !strings.HasSuffix(n.Text, ";")
}

// insertAliases splits header at its first `:` parents clause (if any) and
// inserts aliases ahead of it, producing `child_name, aliases: parents`
// rather than appending aliases after parents (§4.RB→I step 1's
// `child_name [, aliases] [: parents]` ordering).
func insertAliases(header, aliases string) string {
	if idx := strings.Index(header, ":"); idx >= 0 {
		name := header[:idx]
		parents := ": " + strings.TrimSpace(header[idx+1:])
		return name + ", " + aliases + parents
	}
	return header + ", " + aliases
}

// joinDoWhile implements step 2: a bare `do` node immediately followed by a
// `while(...)​;` sibling absorbs the condition into `do while(...)`.
func joinDoWhile(siblings []blocktree.Node, rn linestream.RenumberMap) []blocktree.Node {
	out := make([]blocktree.Node, 0, len(siblings))
	for i := 0; i < len(siblings); i++ {
		leader := siblings[i]
		if leader.Text == "do" && i+1 < len(siblings) {
			follower := siblings[i+1]
			if len(follower.Children) == 0 && doWhileFollowerPattern.MatchString(strings.TrimSpace(follower.Text)) {
				cond := strings.TrimSuffix(strings.TrimSpace(follower.Text), ";")
				leader.Text = "do " + cond
				if leader.HasLine() && follower.HasLine() {
					rn.Join(follower.LineNo, leader.LineNo)
				}
				out = append(out, leader)
				i++
				continue
			}
		}
		out = append(out, leader)
	}
	return out
}

// nestLabels implements step 3: every sibling following an access-modifier
// or case/default label, up to the next such label, becomes that label's
// child instead of its sibling.
func nestLabels(siblings []blocktree.Node) []blocktree.Node {
	var out []blocktree.Node
	var open *blocktree.Node

	for _, n := range siblings {
		if isLabelColon(n.Text) {
			out = append(out, n)
			open = &out[len(out)-1]
			continue
		}
		if open != nil {
			open.Children = append(open.Children, n)
			continue
		}
		out = append(out, n)
	}
	return out
}

// stripTrailingSemicolon implements step 4: every leaf loses a single
// trailing `;`. Block introducers never carried one (§4.PB flushes `{`
// without including it), so this only ever touches leaves.
func stripTrailingSemicolon(n *blocktree.Node) {
	if n.IsBlock() || isMacro(n.Text) {
		return
	}
	n.Text = strings.TrimSuffix(n.Text, ";")
}

// insertColons implements step 5: every block-introducing node gains a
// trailing `:`, except access-modifier/switch-label nodes, which already
// carry one.
func insertColons(siblings []blocktree.Node) []blocktree.Node {
	for i := range siblings {
		n := &siblings[i]
		if n.IsBlock() && !isLabelColon(n.Text) {
			n.Text += ":"
		}
	}
	return siblings
}
