package main

import (
	"fmt"
	"io"
	"strings"

	"readhelper/internal/domain"
	"readhelper/internal/render"
)

type footnote struct {
	index       int
	word        string
	explanation string
}

// printPassage writes the passage as prose with numbered footnotes for
// explained words. Pending lookups are marked inline.
func printPassage(w io.Writer, passage domain.Passage, pendingWord string) {
	rendered := render.Passage(passage, render.Options{PendingWord: pendingWord})

	var notes []footnote
	for pi, para := range rendered {
		if pi > 0 {
			fmt.Fprintln(w)
		}

		var b strings.Builder
		for _, seg := range para {
			b.WriteString(seg.Word)
			switch seg.State {
			case render.StateExplained:
				notes = append(notes, footnote{
					index:       len(notes) + 1,
					word:        seg.Word,
					explanation: seg.Explanation,
				})
				fmt.Fprintf(&b, "[%d]", len(notes))
			case render.StatePending:
				b.WriteString("[...]")
			}
			if seg.SpaceAfter {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintln(w, b.String())
	}

	if len(notes) > 0 {
		fmt.Fprintln(w)
		for _, n := range notes {
			fmt.Fprintf(w, "  [%d] %s: %s\n", n.index, n.word, n.explanation)
		}
	}
}
