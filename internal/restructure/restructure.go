// Package restructure implements the two dialect-specific restructuring
// passes that sit between parsing and emission (§4.RB→I, §4.RI→B): folding
// type-definition aliases and do/while statements together or apart,
// re-nesting (or un-nesting) access-modifier and switch-label sections, and
// inserting or removing the `:`/`;` terminators each surface form expects.
//
// Each entry point returns the rewritten tree alongside a
// linestream.RenumberMap recording every line it joined or split, for the
// comment merger to resolve against later (§4.M).
package restructure

import (
	"regexp"
	"strings"

	"github.com/thinclang/thinc/internal/blocktree"
)

// aliasLeaderPattern matches a type-definition introducer eligible to
// absorb a following alias list (§4.RB→I step 1).
var aliasLeaderPattern = regexp.MustCompile(`^(class|struct|typedef|enum|union)(\s+\S.*)?$`)

// aliasFollowerPattern matches a bare identifier list terminated by `;`:
// the shape a leader's alias sibling takes in B-form.
var aliasFollowerPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_:<>, ]*;$`)

// doWhileFollowerPattern matches a B-form `while(...)​;` trailer.
var doWhileFollowerPattern = regexp.MustCompile(`^while\(.+\);$`)

// labelColonPattern matches an already-colon-terminated access modifier or
// switch label, as it appears once parsed out of B-form (§4.PB already
// folded the `:` into the node's text).
var labelColonPattern = regexp.MustCompile(`^(public|private|protected|case\s+.+|default):$`)

// labelBarePattern matches the same labels before their `:` is attached
// (I-form, pre colon-removal, or post colon-removal in RI→B).
var labelBarePattern = regexp.MustCompile(`^(public|private|protected|case\s+.+|default)$`)

func isLabelColon(text string) bool { return labelColonPattern.MatchString(text) }
func isLabelBare(text string) bool  { return labelBarePattern.MatchString(text) }
func isMacro(text string) bool      { return strings.HasPrefix(strings.TrimSpace(text), "#") }

// mapWalk rewrites every node's Children recursively with fn, then applies
// fn to the resulting sibling sequence itself — the shape every §4.RB→I /
// §4.RI→B pass shares: operate on one level's siblings, recurse first.
func mapWalk(nodes []blocktree.Node, fn func([]blocktree.Node) []blocktree.Node) []blocktree.Node {
	for i := range nodes {
		nodes[i].Children = mapWalk(nodes[i].Children, fn)
	}
	return fn(nodes)
}

// eachNode applies fn to every node in the tree, in place, pre-order.
func eachNode(nodes []blocktree.Node, fn func(*blocktree.Node)) {
	for i := range nodes {
		fn(&nodes[i])
		eachNode(nodes[i].Children, fn)
	}
}
