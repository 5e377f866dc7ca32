package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"readhelper/internal/domain"
	"readhelper/internal/explain"
	"readhelper/internal/repository"

	"go.uber.org/zap"
)

// ErrNoExplanation is returned when the explainer has nothing to say
// about a requested word.
var ErrNoExplanation = fmt.Errorf("no explanation available")

// PassageService handles annotation and saved-passage logic
type PassageService struct {
	passageRepo repository.PassageRepository
	keywordRepo repository.KeywordRepository
	explainer   explain.Explainer
	logger      *zap.Logger
}

// NewPassageService creates a new passage service
func NewPassageService(
	passageRepo repository.PassageRepository,
	keywordRepo repository.KeywordRepository,
	explainer explain.Explainer,
	logger *zap.Logger,
) *PassageService {
	return &PassageService{
		passageRepo: passageRepo,
		keywordRepo: keywordRepo,
		explainer:   explainer,
		logger:      logger,
	}
}

// Annotate tokenizes a raw passage, picks candidate terms the user does
// not already know, and attaches explanations from the explainer.
// userID 0 means an anonymous caller: no known-keyword filtering and no
// history recording.
func (s *PassageService) Annotate(ctx context.Context, userID int64, text string) (domain.Passage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("passage must not be empty")
	}

	passage := Tokenize(text)

	known := map[string]bool{}
	if userID != 0 {
		keywords, err := s.keywordRepo.GetKnownKeywords(userID)
		if err != nil {
			return nil, err
		}
		for _, kw := range keywords {
			known[kw] = true
		}
	}

	var terms []string
	seen := map[string]bool{}
	for _, para := range passage {
		for _, tok := range para {
			term := CandidateTerm(tok.Word)
			if term == "" || seen[term] || known[term] {
				continue
			}
			seen[term] = true
			terms = append(terms, term)
		}
	}

	explanations, err := s.explainer.Explain(ctx, terms, text)
	if err != nil {
		return nil, fmt.Errorf("explain terms: %w", err)
	}

	for pi, para := range passage {
		for wi, tok := range para {
			if exp, ok := explanations[CandidateTerm(tok.Word)]; ok {
				passage[pi][wi].Explanation = exp.Explanation
			}
		}
	}

	if userID != 0 {
		s.recordHistory(userID, explanations)
	}

	return passage, nil
}

// NewKeyword explains one word of an already annotated passage and
// returns the full replacement passage.
func (s *PassageService) NewKeyword(ctx context.Context, userID int64, passage domain.Passage, word string) (domain.Passage, error) {
	term := CandidateTerm(word)
	if term == "" {
		term = domain.NormalizeKeyword(word)
	}
	if term == "" {
		return nil, fmt.Errorf("word must not be empty")
	}

	explanations, err := s.explainer.Explain(ctx, []string{term}, joinWords(passage))
	if err != nil {
		return nil, fmt.Errorf("explain term: %w", err)
	}

	exp, ok := explanations[term]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoExplanation, word)
	}

	updated := passage.Clone()
	for pi, para := range updated {
		for wi, tok := range para {
			if tokenMatches(tok.Word, term) {
				updated[pi][wi].Explanation = exp.Explanation
			}
		}
	}

	if userID != 0 {
		s.recordHistory(userID, map[string]explain.Explanation{term: exp})
	}

	return updated, nil
}

// AddKnownWord clears the word's explanation throughout the passage and
// remembers it as known for the user. Marking the same word again is a
// no-op.
func (s *PassageService) AddKnownWord(userID int64, passage domain.Passage, word string) (domain.Passage, error) {
	term := CandidateTerm(word)
	if term == "" {
		term = domain.NormalizeKeyword(word)
	}
	if term == "" {
		return nil, fmt.Errorf("word must not be empty")
	}

	updated := passage.Clone()
	for pi, para := range updated {
		for wi, tok := range para {
			if tokenMatches(tok.Word, term) {
				updated[pi][wi].Explanation = ""
			}
		}
	}

	if userID != 0 {
		if err := s.keywordRepo.AddKnownKeyword(userID, term); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// SavePassage persists the passage for the user
func (s *PassageService) SavePassage(userID int64, passage domain.Passage) (int64, error) {
	if len(passage) == 0 {
		return 0, fmt.Errorf("passage must not be empty")
	}
	return s.passageRepo.SavePassage(userID, passage)
}

// SavedPassages lists the user's saved passages
func (s *PassageService) SavedPassages(userID int64) ([]domain.SavedPassage, error) {
	passages, err := s.passageRepo.GetPassagesByUser(userID)
	if err != nil {
		return nil, err
	}
	if passages == nil {
		passages = []domain.SavedPassage{}
	}
	return passages, nil
}

// DeletePassage removes one saved passage owned by the user
func (s *PassageService) DeletePassage(userID, passageID int64) (bool, error) {
	return s.passageRepo.DeletePassage(userID, passageID)
}

// recordHistory appends explained terms to the user's keyword history.
// Failures are logged, not surfaced: history is a convenience, the
// annotation itself already succeeded.
func (s *PassageService) recordHistory(userID int64, explanations map[string]explain.Explanation) {
	for term, exp := range explanations {
		pair := domain.KeywordExplanationPair{
			Keyword:     term,
			Explanation: exp.Explanation,
			Reason:      exp.Reason,
		}
		if err := s.keywordRepo.AddKeywordPair(userID, pair); err != nil {
			s.logger.Warn("failed to record keyword history",
				zap.Int64("user_id", userID),
				zap.String("keyword", term),
				zap.Error(err),
			)
		}
	}
}

// Tokenize splits raw text into the paragraph/word structure. Lines
// are paragraphs; whitespace separates words. Punctuation stays
// attached to its word, which the rendering spacing rule accounts for.
func Tokenize(text string) domain.Passage {
	var passage domain.Passage
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		para := make(domain.Paragraph, len(words))
		for i, w := range words {
			para[i] = domain.WordToken{Word: w}
		}
		passage = append(passage, para)
	}
	return passage
}

// minTermLength filters out short everyday words; all-caps acronyms are
// exempt because they are often the hardest terms in technical prose.
const minTermLength = 4

// CandidateTerm reduces a token to its lookup form: surrounding
// punctuation stripped, case-normalized. Returns "" when the token is
// not worth explaining (stopword, number, too short).
func CandidateTerm(word string) string {
	core := strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if core == "" {
		return ""
	}

	acronym := len(core) >= 2 && core == strings.ToUpper(core) && strings.IndexFunc(core, unicode.IsLetter) >= 0

	normalized := domain.NormalizeKeyword(core)
	if stopwords[normalized] {
		return ""
	}
	if !acronym && len([]rune(normalized)) < minTermLength {
		return ""
	}
	if strings.IndexFunc(normalized, unicode.IsLetter) < 0 {
		return ""
	}
	return normalized
}

func tokenMatches(word, term string) bool {
	return CandidateTerm(word) == term || domain.NormalizeKeyword(word) == term
}

func joinWords(passage domain.Passage) string {
	var b strings.Builder
	for i, para := range passage {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, tok := range para {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Word)
		}
	}
	return b.String()
}
