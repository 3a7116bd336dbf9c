package thinc

import "github.com/thinclang/thinc/internal/linestream"

// Direction selects which surface form Transcode renders. The zero value,
// Auto, autodetects the input's form and emits the opposite (§4.D, §6).
type Direction int

const (
	Auto Direction = iota
	ToBrace
	ToIndent
)

// Form is the surface syntax a source text is written in.
type Form int

const (
	FormBrace Form = iota
	FormIndent
)

// maxDetectLines bounds how much of the code stream DetectForm inspects,
// per §4.D ("at most the first 50,000 code lines").
const maxDetectLines = 50000

// DetectForm scans code lines (already split from comments by the lexical
// splitter) and declares the source B-form or I-form by majority of
// terminal `;` versus `:` among non-empty lines. Ties favor I-form, matching
// the "otherwise I-form" wording of §4.D.
func DetectForm(codeLines []linestream.CodeLine) Form {
	var semis, colons int
	n := len(codeLines)
	if n > maxDetectLines {
		n = maxDetectLines
	}
	for _, l := range codeLines[:n] {
		text := l.Text
		if text == "" {
			continue
		}
		switch text[len(text)-1] {
		case ';':
			semis++
		case ':':
			colons++
		}
	}
	if semis > colons {
		return FormBrace
	}
	return FormIndent
}

// resolve turns a requested Direction plus the source's detected form into
// a concrete target form: explicit directions win outright, Auto emits
// whichever form the input is not currently in.
func (d Direction) resolve(detected Form) Form {
	switch d {
	case ToBrace:
		return FormBrace
	case ToIndent:
		return FormIndent
	default:
		if detected == FormBrace {
			return FormIndent
		}
		return FormBrace
	}
}
