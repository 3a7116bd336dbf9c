// Package thinc transcodes C/C++-like pseudocode between brace syntax and
// indent syntax. It never fails on malformed input: every stage does its
// best with what it is given and the final render always produces text
// (§7).
package thinc

import (
	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/braceparse"
	"github.com/thinclang/thinc/internal/cosmetic"
	"github.com/thinclang/thinc/internal/emit"
	"github.com/thinclang/thinc/internal/indentparse"
	"github.com/thinclang/thinc/internal/lexsplit"
	"github.com/thinclang/thinc/internal/linestream"
	"github.com/thinclang/thinc/internal/merge"
	"github.com/thinclang/thinc/internal/restructure"
)

// Transcode runs the full pipeline (§2): split source into code and comment
// streams, detect or apply the requested direction, parse the code stream
// into a block tree in whichever form it is written, restructure that tree
// into the opposite form when the target form differs from the detected one
// (a target matching the input's form is re-emitted without restructuring),
// emit it back to a flat line stream, reattach comments, and render the
// cosmetic output.
func Transcode(source string, dir Direction) string {
	split := lexsplit.Split(source)

	detected := DetectForm(split.Code)
	target := dir.resolve(detected)

	var tree []blocktree.Node
	if detected == FormBrace {
		tree = braceparse.Parse(split.Code)
	} else {
		tree = indentparse.Parse(split.Code)
	}

	rn := make(linestream.RenumberMap)
	var codeRecords []emit.Record
	switch {
	case detected == FormBrace && target == FormIndent:
		tree, rn = restructure.ToIndent(tree)
		codeRecords = emit.Indent(tree)
	case detected == FormIndent && target == FormBrace:
		tree, rn = restructure.ToBrace(tree)
		codeRecords = emit.Brace(tree)
	case target == FormBrace:
		codeRecords = emit.Brace(tree)
	default:
		codeRecords = emit.Indent(tree)
	}

	merged := merge.Merge(codeRecords, split.BlockComments, split.LineComments, rn)
	return cosmetic.Render(merged)
}
