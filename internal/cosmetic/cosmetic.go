// Package cosmetic implements the final pipeline stage (§4.C): expanding
// rolled-up block comments back into their own lines, and inserting blank
// lines at category transitions and block boundaries so the rendered
// output reads the way a human would have written it.
package cosmetic

import (
	"strings"

	"github.com/thinclang/thinc/internal/linestream"
	"github.com/thinclang/thinc/internal/merge"
)

// Category classifies a rendered line for the blank-line insertion rule.
type Category int

const (
	Code Category = iota
	CloseBrace
	Macro
	Comment
)

// Line is one fully-combined output line: indent depth plus the already
// space-joined code/comment text (empty for an inserted blank line).
type Line struct {
	Indent   int
	Text     string
	Category Category
	Blank    bool
	group    int
}

// Render applies both cosmetic steps to merged records and joins the
// result into the final output string (§4.C, §6 "output uses \n only").
func Render(records []merge.Record) string {
	records = dragBackAliasTrailers(records)
	lines := expandBlockComments(records)
	lines = insertBlankLines(lines)

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if l.Blank {
			continue
		}
		b.WriteString(strings.Repeat(" ", l.Indent*linestream.IndentWidth))
		b.WriteString(l.Text)
	}
	return b.String()
}

// dragBackAliasTrailers joins a synthesized alias/terminator trailer (left
// behind on its own record by the I-to-B alias split, §4.RI→B step 5) back
// onto the closing brace it immediately follows at the same indent, the way
// `} Foo, Bar;` reads as one physical line in B-form. Run before block
// comment expansion and blank-line classification so neither sees the two
// halves as separate records.
func dragBackAliasTrailers(records []merge.Record) []merge.Record {
	out := make([]merge.Record, 0, len(records))
	for i := 0; i < len(records); i++ {
		r := records[i]
		if i+1 < len(records) && isClosingBrace(r) && isDraggableTrailer(records[i+1], r.Indent) {
			trailer := records[i+1].Code
			if len(trailer) > 1 {
				r.Code = r.Code + " " + trailer
			} else {
				r.Code = r.Code + trailer
			}
			i++
		}
		out = append(out, r)
	}
	return out
}

func isClosingBrace(r merge.Record) bool { return r.Code == "}" }

func isDraggableTrailer(r merge.Record, indent int) bool {
	return r.Synthesized && r.Code != "" && r.Code != "}" && r.Indent == indent
}

// expandBlockComments implements §4.C step 1: a record's first block
// comment line attaches to its anchor code line; every subsequent line
// becomes its own comment-only record immediately after.
func expandBlockComments(records []merge.Record) []Line {
	var out []Line
	for i, r := range records {
		anchor := ""
		if len(r.BlockComment) > 0 {
			anchor = r.BlockComment[0]
		}
		line := combine(r, anchor)
		line.group = i
		out = append(out, line)
		if len(r.BlockComment) > 1 {
			for _, extra := range r.BlockComment[1:] {
				out = append(out, Line{Indent: r.Indent, Text: extra, Category: Comment, group: i})
			}
		}
	}
	return out
}

// combine joins one merged record's code, block-comment first line, and
// line comment into a single rendered line of text, and classifies it.
func combine(r merge.Record, blockPiece string) Line {
	text := r.Code
	if blockPiece != "" {
		text = joinSpace(text, blockPiece)
	}
	if r.LineComment != "" {
		text = joinSpace(text, r.LineComment)
	}
	return Line{Indent: r.Indent, Text: text, Category: categorize(r.Code)}
}

func joinSpace(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

func categorize(code string) Category {
	switch {
	case strings.HasPrefix(strings.TrimSpace(code), "#"):
		return Macro
	case strings.HasPrefix(code, "}"):
		return CloseBrace
	case code != "":
		return Code
	default:
		return Comment
	}
}

// insertBlankLines implements §4.C step 2. A blank line follows a record
// when the next record sits at top-level indent and the two cross a
// category boundary (code/comment, macro/{code,comment}, and close_brace
// followed by code or comment — the reverse, code/comment followed by
// close_brace, is not a transition), or when two consecutive code records
// show decreasing indent, or when the record two ahead increases indent
// (signaling a new block is about to begin). A final blank line always
// closes the output.
func insertBlankLines(lines []Line) []Line {
	out := make([]Line, 0, len(lines)+len(lines)/4+1)
	for i, l := range lines {
		out = append(out, l)
		if i == len(lines)-1 {
			continue
		}
		next := lines[i+1]
		if l.group == next.group {
			// Both lines came from the same merged record (a block
			// comment's own continuation lines): never split these with
			// a blank, regardless of category.
			continue
		}
		blank := false

		if next.Indent == 0 && isCategoryTransition(l.Category, next.Category) {
			blank = true
		}
		if l.Category == Code && next.Category == Code {
			if next.Indent < l.Indent {
				blank = true
			}
			if i+2 < len(lines) && lines[i+2].Indent > next.Indent {
				blank = true
			}
		}
		if blank {
			out = append(out, Line{Blank: true})
		}
	}
	out = append(out, Line{Blank: true})
	return out
}

func isCategoryTransition(a, b Category) bool {
	pair := func(x, y Category) bool {
		return (a == x && b == y) || (a == y && b == x)
	}
	return pair(Code, Comment) ||
		pair(Macro, Code) ||
		pair(Macro, Comment) ||
		(a == CloseBrace && b == Code) ||
		(a == CloseBrace && b == Comment)
}
