// Package explain produces keyword explanations. The explanation model
// itself is an external service; this package defines the seam and the
// adapters the rest of the server works through.
package explain

import "context"

// Explanation is one generated explanation plus the model's stated
// reason for flagging the term.
type Explanation struct {
	Explanation string `json:"explanation"`
	Reason      string `json:"reason,omitempty"`
}

// Explainer resolves terms to explanations. Implementations return
// entries only for the terms they can explain; absent terms are left
// unannotated by the caller.
type Explainer interface {
	Explain(ctx context.Context, terms []string, passage string) (map[string]Explanation, error)
}

// Static is a glossary-backed explainer used in development and tests.
type Static struct {
	Glossary map[string]Explanation
}

// Explain returns glossary hits for the requested terms.
func (s *Static) Explain(_ context.Context, terms []string, _ string) (map[string]Explanation, error) {
	out := make(map[string]Explanation)
	for _, term := range terms {
		if exp, ok := s.Glossary[term]; ok {
			out[term] = exp
		}
	}
	return out, nil
}
