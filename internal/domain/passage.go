package domain

// WordToken is a single word of an annotated passage. A non-empty
// Explanation means the backend flagged the word as a difficult term.
type WordToken struct {
	Word        string `json:"word"`
	Explanation string `json:"explanation,omitempty"`
}

// Explained reports whether the token carries an explanation.
func (t WordToken) Explained() bool {
	return t.Explanation != ""
}

// Paragraph is an ordered sequence of word tokens. Token order
// reconstructs the original text and never changes after annotation;
// only the Explanation of individual tokens is replaced in place.
type Paragraph []WordToken

// Passage is an ordered sequence of paragraphs, the unit that is
// submitted, annotated, saved and displayed.
type Passage []Paragraph

// Clone returns a deep copy of the passage.
func (p Passage) Clone() Passage {
	if p == nil {
		return nil
	}
	out := make(Passage, len(p))
	for i, para := range p {
		out[i] = make(Paragraph, len(para))
		copy(out[i], para)
	}
	return out
}

// ContainsWord reports whether any token in the passage has the given
// word, matched case-insensitively after trimming.
func (p Passage) ContainsWord(word string) bool {
	want := NormalizeKeyword(word)
	for _, para := range p {
		for _, tok := range para {
			if NormalizeKeyword(tok.Word) == want {
				return true
			}
		}
	}
	return false
}

// SavedPassage is a persisted passage owned by a single user.
type SavedPassage struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"-"`
	Passage Passage `json:"split_result_with_explanations"`
}
