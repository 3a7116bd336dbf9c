// Package merge implements the comment merger (§4.M): it reattaches block
// and line comments to the code lines an emitter produced, resolving each
// comment's original line number through a restructurer's renumber map,
// and resolving any line-number collisions among the emitted code records
// with fractional keys so emission order survives the merge.
package merge

import (
	"sort"

	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/emit"
	"github.com/thinclang/thinc/internal/linestream"
)

// Record is one merged line: an indent depth, its code text (empty for a
// comment-only line), and its block/line comment text (empty when absent).
// BlockComment keeps the comment's original rolled-up lines; expanding them
// into their own records is the cosmetic layer's job (§4.C step 1).
type Record struct {
	Indent       int
	Code         string
	BlockComment []string
	LineComment  string
	// Synthesized reports whether Code came from a node with no source
	// line of its own (an emitter's closing brace, or a restructurer's
	// split-off trailer), rather than from the original code stream.
	Synthesized bool
}

// Merge builds the three line-keyed maps and unions them in key order
// (§4.M), then propagates each code line's indent back onto any
// comment-only lines immediately preceding it.
func Merge(
	codeRecords []emit.Record,
	blockComments []linestream.BlockComment,
	lineComments []linestream.LineComment,
	rn linestream.RenumberMap,
) []Record {
	codeKeys := assignCodeKeys(codeRecords)

	byKey := make(map[linestream.LineKey]*Record)
	order := make([]linestream.LineKey, 0, len(codeRecords)+len(blockComments)+len(lineComments))

	get := func(k linestream.LineKey) *Record {
		if r, ok := byKey[k]; ok {
			return r
		}
		r := &Record{}
		byKey[k] = r
		order = append(order, k)
		return r
	}

	for i, rec := range codeRecords {
		k := codeKeys[i]
		r := get(k)
		r.Indent = rec.Indent
		r.Code = rec.Text
		r.Synthesized = rec.LineNo == blocktree.NoLine
	}
	for _, bc := range blockComments {
		k := linestream.Of(rn.Resolve(bc.StartLine))
		r := get(k)
		r.BlockComment = append(r.BlockComment, bc.Lines...)
	}
	for _, lc := range lineComments {
		k := linestream.Of(rn.Resolve(lc.LineNo))
		r := get(k)
		r.LineComment = lc.Text
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Less(order[j]) })

	out := make([]Record, len(order))
	for i, k := range order {
		out[i] = *byKey[k]
	}
	propagateIndent(out)
	return out
}

// assignCodeKeys gives every code record a LineKey: the first record at a
// given original line keeps the plain integer key; every later record at
// the same original line (a genuine collision — e.g. a synthesized closing
// brace, or a do/while split's trailing half) gets the fractional slot
// immediately after whatever key preceded it, preserving emission order.
func assignCodeKeys(records []emit.Record) []linestream.LineKey {
	keys := make([]linestream.LineKey, len(records))
	seen := make(map[int]bool)
	var prev linestream.LineKey
	havePrev := false

	for i, r := range records {
		var k linestream.LineKey
		if r.LineNo != blocktree.NoLine && !seen[r.LineNo] {
			k = linestream.Of(r.LineNo)
			seen[r.LineNo] = true
		} else if havePrev {
			k = prev.After()
		} else {
			k = linestream.Of(0)
		}
		keys[i] = k
		prev = k
		havePrev = true
	}
	return keys
}

// propagateIndent carries each code line's indent backward onto any
// immediately preceding comment-only lines, scanning from the bottom up
// (§4.M).
func propagateIndent(records []Record) {
	indent := 0
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Code != "" {
			indent = records[i].Indent
			continue
		}
		records[i].Indent = indent
	}
}
