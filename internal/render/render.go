// Package render turns an annotated passage into displayable segments,
// reconstructing natural prose spacing from the tokenized form.
package render

import (
	"strings"

	"readhelper/internal/domain"
)

// TokenState classifies how a token should be presented.
type TokenState int

const (
	// StateUnexplained is a plain word, eligible for an on-demand lookup.
	StateUnexplained TokenState = iota
	// StateExplained is a word carrying an explanation, shown as an
	// inspectable unit.
	StateExplained
	// StatePending is a word whose explanation lookup is in flight.
	StatePending
)

// String returns a short label for the state.
func (s TokenState) String() string {
	switch s {
	case StateExplained:
		return "explained"
	case StatePending:
		return "pending"
	default:
		return "unexplained"
	}
}

// Segment is one rendered token plus its trailing spacing decision.
type Segment struct {
	Word        string
	Explanation string
	State       TokenState
	// SpaceAfter is true when a single space separates this token from
	// the next one in the same paragraph.
	SpaceAfter bool
}

// Options adjusts rendering to transient interaction state.
type Options struct {
	// PendingWord marks the word whose lookup is currently in flight.
	// Matched after keyword normalization; empty means no lookup.
	PendingWord string
}

// openers never take a space after them when they end a token.
const openers = "([{"

// closers never take a space before a token starting with them.
const closers = ".,;:!?)]}"

// needsSpace implements the inter-token spacing rule: a single space
// separates adjacent tokens unless the current token ends with an
// opening bracket or the next token begins with closing punctuation.
func needsSpace(current, next string) bool {
	if strings.ContainsRune(openers, rune(current[len(current)-1])) {
		return false
	}
	if strings.ContainsRune(closers, rune(next[0])) {
		return false
	}
	return true
}

// Paragraph renders one paragraph. Tokens with an empty word are
// malformed annotate output; they are dropped rather than breaking the
// spacing of their neighbors.
func Paragraph(para domain.Paragraph, opts Options) []Segment {
	pending := domain.NormalizeKeyword(opts.PendingWord)

	segments := make([]Segment, 0, len(para))
	for _, tok := range para {
		if tok.Word == "" {
			continue
		}
		state := StateUnexplained
		switch {
		case tok.Explained():
			state = StateExplained
		case pending != "" && domain.NormalizeKeyword(tok.Word) == pending:
			state = StatePending
		}
		segments = append(segments, Segment{
			Word:        tok.Word,
			Explanation: tok.Explanation,
			State:       state,
		})
	}

	for i := range segments {
		if i == len(segments)-1 {
			break
		}
		segments[i].SpaceAfter = needsSpace(segments[i].Word, segments[i+1].Word)
	}
	return segments
}

// Passage renders every paragraph of a passage.
func Passage(passage domain.Passage, opts Options) [][]Segment {
	rendered := make([][]Segment, len(passage))
	for i, para := range passage {
		rendered[i] = Paragraph(para, opts)
	}
	return rendered
}

// JoinParagraph reconstructs the paragraph text using the spacing rule.
func JoinParagraph(para domain.Paragraph) string {
	var b strings.Builder
	for _, seg := range Paragraph(para, Options{}) {
		b.WriteString(seg.Word)
		if seg.SpaceAfter {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
