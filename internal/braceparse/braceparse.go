// Package braceparse implements the B-form parser (§4.PB): it tokenizes the
// brace-syntax code stream into a block tree by walking character by
// character, maintaining in-string, in-parens, and a text buffer, the same
// hand-rolled-scanner style scandown uses to walk a document byte by byte
// without a separate lexer pass.
package braceparse

import (
	"regexp"
	"strings"

	"github.com/thinclang/thinc/internal/blocktree"
	"github.com/thinclang/thinc/internal/linestream"
)

// labelPattern matches an access modifier or switch label: the only buffer
// contents that make a trailing `:` structural rather than literal (§4.PB).
var labelPattern = regexp.MustCompile(`^(public|private|protected|case\s+.+|default)\s*$`)

// frame is one level of the tree being built: the node text/line that will
// own the children accumulated so far at this depth. The bottom frame (the
// root) is never popped and never becomes a node itself — it simply
// collects top-level siblings.
type frame struct {
	lineNo   int
	text     string
	children []blocktree.Node
}

// parser holds the character-walk state shared across every code line.
type parser struct {
	stack                  []frame
	buf                    strings.Builder
	bufLine                int
	haveBufLine            bool
	inString               bool
	inParens               int
	prevBackslashContinued bool
}

// Parse tokenizes a B-form code stream into a block tree (§4.PB). It never
// fails: an unterminated string suppresses structural recognition to EOF,
// and any braces left open at EOF are implicitly closed (§7).
func Parse(lines []linestream.CodeLine) []blocktree.Node {
	p := &parser{stack: []frame{{}}}

	for _, line := range lines {
		if isMacroLine(line.Text) {
			p.flushPending()
			p.appendNode(blocktree.New(line.LineNo, line.Text))
			continue
		}

		if p.buf.Len() > 0 && !p.prevBackslashContinued {
			p.appendRune(' ', line.LineNo)
		}
		p.prevBackslashContinued = false

		rs := []rune(line.Text)
		for j := 0; j < len(rs); j++ {
			c := rs[j]

			if c == '\\' && j == len(rs)-1 {
				p.prevBackslashContinued = true
				break
			}

			var prev, next rune
			if j > 0 {
				prev = rs[j-1]
			}
			if j+1 < len(rs) {
				next = rs[j+1]
			}

			p.step(c, prev, next, line.LineNo)
		}
	}

	p.flushPending()
	for len(p.stack) > 1 {
		p.closeBrace()
	}
	return p.stack[0].children
}

// step processes one character, given its immediate neighbors for the `:`
// lookahead/lookback rule and the `"`-escape lookback rule (§3 invariant 3,
// §4.PB).
func (p *parser) step(c, prev, next rune, lineNo int) {
	switch {
	case c == '"' && prev != '\\':
		p.inString = !p.inString
		p.appendRune(c, lineNo)

	case p.inString:
		p.appendRune(c, lineNo)

	case c == '(':
		p.inParens++
		p.appendRune(c, lineNo)

	case c == ')':
		if p.inParens > 0 {
			p.inParens--
		}
		p.appendRune(c, lineNo)

	case c == '{':
		text, textLine := p.flushBufferText(lineNo)
		p.openBrace(textLine, text)

	case c == '}':
		p.flushLeaf(lineNo)
		p.closeBrace()

	case c == ';' && p.inParens == 0:
		p.appendRune(c, lineNo)
		p.flushLeaf(lineNo)

	case c == ':' && p.inParens == 0 && prev != ':' && next != ':' && labelPattern.MatchString(strings.TrimSpace(p.buf.String())):
		p.appendRune(c, lineNo)
		p.flushLeaf(lineNo)

	default:
		p.appendRune(c, lineNo)
	}
}

// appendRune writes c to the buffer, collapsing a run of two spaces outside
// strings down to one, and records the line the buffer's content started on.
func (p *parser) appendRune(c rune, lineNo int) {
	if !p.haveBufLine {
		p.bufLine = lineNo
		p.haveBufLine = true
	}
	if !p.inString && c == ' ' {
		s := p.buf.String()
		if len(s) > 0 && s[len(s)-1] == ' ' {
			return
		}
	}
	p.buf.WriteRune(c)
}

// flushBufferText extracts and resets the buffer's trimmed text, for use by
// the `{` handler, which needs the text before deciding the new node's line
// number.
func (p *parser) flushBufferText(lineNo int) (string, int) {
	text := strings.TrimSpace(p.buf.String())
	textLine := p.bufLine
	if !p.haveBufLine {
		textLine = lineNo
	}
	p.resetBuf()
	return text, textLine
}

// flushLeaf appends the current buffer as a leaf node of the current frame,
// if the buffer holds any text; a buffer that is empty or all whitespace
// produces no node.
func (p *parser) flushLeaf(lineNo int) {
	text, textLine := p.flushBufferText(lineNo)
	if text == "" {
		return
	}
	p.appendNode(blocktree.New(textLine, text))
}

// flushPending flushes a trailing non-empty buffer at end of input or
// before a macro line interrupts an in-progress statement.
func (p *parser) flushPending() {
	if strings.TrimSpace(p.buf.String()) != "" {
		p.flushLeaf(p.bufLine)
	}
	p.resetBuf()
}

func (p *parser) resetBuf() {
	p.buf.Reset()
	p.haveBufLine = false
}

// appendNode adds n as the next child of the current (innermost) frame.
func (p *parser) appendNode(n blocktree.Node) {
	top := len(p.stack) - 1
	p.stack[top].children = append(p.stack[top].children, n)
}

// openBrace pushes a new frame whose owning node is text/textLine. The line
// comes from flushBufferText: the line the buffered header text started on,
// so a "{" alone on its line is attributed to the earlier line holding the
// header; with no header text buffered, it is the "{"'s own line (§4.PB).
func (p *parser) openBrace(textLine int, text string) {
	p.stack = append(p.stack, frame{lineNo: textLine, text: text})
}

// closeBrace pops the current frame and appends the node it built to its
// parent. A frame left open at EOF (mismatched braces, §7) closes the same
// way, using whatever header line it was pushed with.
func (p *parser) closeBrace() {
	if len(p.stack) <= 1 {
		return
	}
	top := len(p.stack) - 1
	f := p.stack[top]
	p.stack = p.stack[:top]

	p.appendNode(blocktree.Node{LineNo: f.lineNo, Text: f.text, Children: f.children})
}

// isMacroLine reports whether a code line's first non-space character is
// `#` (§4.PB "Macro passthrough").
func isMacroLine(text string) bool {
	trimmed := strings.TrimLeft(text, " \t")
	return strings.HasPrefix(trimmed, "#")
}
