// Package lexsplit implements the lexical splitter (§4.L): it walks the
// source one raw line and one character at a time, separating code from
// line comments and block comments while tracking line provenance, the way
// scandown's block scanner walks a document one byte at a time without
// building an AST up front.
package lexsplit

import (
	"strings"

	"github.com/thinclang/thinc/internal/linestream"
)

// Result is the three line-keyed streams produced by Split.
type Result struct {
	Code          []linestream.CodeLine
	BlockComments []linestream.BlockComment
	LineComments  []linestream.LineComment
}

// state carries the three mutually exclusive flags tracked while walking a
// single character, plus the one-character lookback §3 invariant 3 calls for.
type state struct {
	inString       bool
	inLineComment  bool
	inBlockComment bool
	prev           rune
}

// Split separates source into its code, block-comment, and line-comment
// streams (§4.L). It never fails: an unterminated string or comment simply
// propagates its flag to end of input.
func Split(source string) Result {
	var r Result
	var st state

	// codeBuf/codeLine model out_code's "one entry per raw line, but reuse
	// the pending entry while it's still empty" rule: a raw line that
	// contributes no code text (e.g. one entirely inside a block comment)
	// doesn't start a new code record, it just drags the pending one's
	// line number forward until a line finally writes some code to it.
	var codeBuf strings.Builder
	codeLine := -1
	pending := false

	flushCode := func() {
		if text, ok := normalizeCodeText(codeBuf.String()); ok {
			r.Code = append(r.Code, linestream.CodeLine{LineNo: codeLine, Text: text})
		}
		codeBuf.Reset()
		pending = false
	}

	for lineNo, raw := range splitLines(source) {
		if strings.TrimSpace(raw) == "" {
			if st.inBlockComment {
				last := &r.BlockComments[len(r.BlockComments)-1]
				last.Lines = append(last.Lines, "")
			}
			continue
		}

		switch {
		case pending && codeBuf.Len() == 0:
			codeLine = lineNo
		default:
			if pending {
				flushCode()
			}
			codeLine = lineNo
			pending = true
		}

		if st.inBlockComment {
			last := &r.BlockComments[len(r.BlockComments)-1]
			last.Lines = append(last.Lines, "")
		}

		st.prev = 0
		st.inLineComment = false
		for _, c := range raw {
			appendChar(&r, &st, &codeBuf, c, lineNo)
			st.prev = c
		}
	}
	if pending {
		flushCode()
	}

	return r
}

// appendChar processes one character per §4.L's transition table. It first
// appends c to whichever stream is currently open, then checks whether c
// (together with the previous character) opens or closes a comment or
// string span — retracting the two delimiter characters from the code
// buffer when a comment begins, since they belong to the comment.
func appendChar(r *Result, st *state, codeBuf *strings.Builder, c rune, lineNo int) {
	switch {
	case st.inLineComment:
		r.LineComments[len(r.LineComments)-1].Text += string(c)
	case st.inBlockComment:
		last := &r.BlockComments[len(r.BlockComments)-1]
		last.Lines[len(last.Lines)-1] += string(c)
	default:
		codeBuf.WriteRune(c)
	}

	switch {
	case !st.inLineComment && !st.inBlockComment && c == '"' && st.prev != '\\':
		st.inString = !st.inString

	case !st.inString && !st.inLineComment && !st.inBlockComment && st.prev == '/' && c == '/':
		st.inLineComment = true
		retract(codeBuf, 2)
		r.LineComments = append(r.LineComments, linestream.LineComment{LineNo: lineNo, Text: "//"})

	case !st.inString && !st.inLineComment && !st.inBlockComment && st.prev == '/' && c == '*':
		st.inBlockComment = true
		retract(codeBuf, 2)
		if len(r.BlockComments) == 0 || r.BlockComments[len(r.BlockComments)-1].StartLine != lineNo {
			r.BlockComments = append(r.BlockComments, linestream.BlockComment{
				StartLine: lineNo,
				Lines:     []string{"/*"},
			})
		} else {
			last := &r.BlockComments[len(r.BlockComments)-1]
			last.Lines[len(last.Lines)-1] += "/*"
		}

	case st.inBlockComment && st.prev == '*' && c == '/':
		st.inBlockComment = false
	}
}

// retract removes the last n runes already written to buf, undoing an
// append that turned out to belong to a comment delimiter instead of code.
func retract(buf *strings.Builder, n int) {
	s := buf.String()
	rs := []rune(s)
	if n > len(rs) {
		n = len(rs)
	}
	buf.Reset()
	buf.WriteString(string(rs[:len(rs)-n]))
}

// normalizeCodeText applies the post-walk code-line normalization: trailing
// whitespace trimmed, leading tabs expanded to the fixed indent width,
// fully blank results dropped (§4.L).
func normalizeCodeText(text string) (string, bool) {
	trimmed := strings.TrimRight(text, " \t")
	content := strings.TrimLeft(trimmed, " \t")
	if content == "" {
		return "", false
	}
	leadLen := len(trimmed) - len(content)
	lead := trimmed[:leadLen]

	var b strings.Builder
	for _, c := range lead {
		if c == '\t' {
			b.WriteString(strings.Repeat(" ", linestream.IndentWidth))
		} else {
			b.WriteRune(c)
		}
	}
	b.WriteString(content)
	return b.String(), true
}

// splitLines breaks source into raw lines on \r\n, \r, or \n, mirroring how
// the rest of the pipeline treats line terminators (§6).
func splitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	if source == "" {
		return nil
	}
	return strings.Split(source, "\n")
}
