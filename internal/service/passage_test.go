package service

import (
	"context"
	"fmt"
	"testing"

	"readhelper/internal/domain"
	"readhelper/internal/explain"
	"readhelper/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func glossaryExplainer() explain.Explainer {
	return &explain.Static{Glossary: map[string]explain.Explanation{
		"scheduler": {Explanation: "assigns runnable work to processors", Reason: "domain term"},
		"preempts":  {Explanation: "takes the processor away from running work"},
		"mutex":     {Explanation: "mutual exclusion lock"},
	}}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		paragraphs int
		firstWords []string
	}{
		{
			name:       "single paragraph",
			text:       "The scheduler preempts",
			paragraphs: 1,
			firstWords: []string{"The", "scheduler", "preempts"},
		},
		{
			name:       "blank lines separate paragraphs",
			text:       "first paragraph\n\nsecond paragraph",
			paragraphs: 2,
			firstWords: []string{"first", "paragraph"},
		},
		{
			name:       "surrounding whitespace ignored",
			text:       "  one two  \n",
			paragraphs: 1,
			firstWords: []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passage := Tokenize(tt.text)

			require.Len(t, passage, tt.paragraphs)
			words := make([]string, len(passage[0]))
			for i, tok := range passage[0] {
				words[i] = tok.Word
			}
			assert.Equal(t, tt.firstWords, words)
		})
	}
}

func TestCandidateTerm(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{name: "plain term", word: "scheduler", expected: "scheduler"},
		{name: "attached punctuation stripped", word: "scheduler,", expected: "scheduler"},
		{name: "wrapped in brackets", word: "(scheduler)", expected: "scheduler"},
		{name: "stopword skipped", word: "through", expected: ""},
		{name: "short word skipped", word: "cat", expected: ""},
		{name: "short acronym kept", word: "API", expected: "api"},
		{name: "pure punctuation", word: "(", expected: ""},
		{name: "pure number", word: "42", expected: ""},
		{name: "case normalized", word: "Scheduler", expected: "scheduler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CandidateTerm(tt.word))
		})
	}
}

func TestPassageService_Annotate(t *testing.T) {
	passageRepo := new(testutil.MockPassageRepository)
	keywordRepo := new(testutil.MockKeywordRepository)
	keywordRepo.On("GetKnownKeywords", int64(7)).Return([]string{}, nil)
	keywordRepo.On("AddKeywordPair", int64(7), mock.AnythingOfType("domain.KeywordExplanationPair")).Return(nil)

	service := NewPassageService(passageRepo, keywordRepo, glossaryExplainer(), testutil.NewTestLogger())

	passage, err := service.Annotate(context.Background(), 7, "The scheduler preempts goroutines.")

	require.NoError(t, err)
	require.Len(t, passage, 1)
	require.Len(t, passage[0], 4)
	assert.Empty(t, passage[0][0].Explanation, "stopword stays plain")
	assert.Equal(t, "assigns runnable work to processors", passage[0][1].Explanation)
	assert.Equal(t, "takes the processor away from running work", passage[0][2].Explanation)
	assert.Empty(t, passage[0][3].Explanation, "term missing from glossary stays plain")

	// scheduler and preempts both land in the history
	keywordRepo.AssertNumberOfCalls(t, "AddKeywordPair", 2)
}

func TestPassageService_AnnotateSkipsKnownKeywords(t *testing.T) {
	keywordRepo := new(testutil.MockKeywordRepository)
	keywordRepo.On("GetKnownKeywords", int64(7)).Return([]string{"scheduler"}, nil)
	keywordRepo.On("AddKeywordPair", int64(7), mock.AnythingOfType("domain.KeywordExplanationPair")).Return(nil)

	service := NewPassageService(new(testutil.MockPassageRepository), keywordRepo, glossaryExplainer(), testutil.NewTestLogger())

	passage, err := service.Annotate(context.Background(), 7, "The scheduler preempts")

	require.NoError(t, err)
	assert.Empty(t, passage[0][1].Explanation, "known keyword is not explained")
	assert.NotEmpty(t, passage[0][2].Explanation)
}

func TestPassageService_AnnotateAnonymous(t *testing.T) {
	keywordRepo := new(testutil.MockKeywordRepository)

	service := NewPassageService(new(testutil.MockPassageRepository), keywordRepo, glossaryExplainer(), testutil.NewTestLogger())

	passage, err := service.Annotate(context.Background(), 0, "The scheduler preempts")

	require.NoError(t, err)
	assert.NotEmpty(t, passage[0][1].Explanation)
	keywordRepo.AssertNotCalled(t, "GetKnownKeywords", mock.Anything)
	keywordRepo.AssertNotCalled(t, "AddKeywordPair", mock.Anything, mock.Anything)
}

func TestPassageService_AnnotateEmptyPassage(t *testing.T) {
	service := NewPassageService(new(testutil.MockPassageRepository), new(testutil.MockKeywordRepository), glossaryExplainer(), testutil.NewTestLogger())

	_, err := service.Annotate(context.Background(), 7, "   \n  ")

	assert.Error(t, err)
}

func TestPassageService_NewKeyword(t *testing.T) {
	keywordRepo := new(testutil.MockKeywordRepository)
	keywordRepo.On("AddKeywordPair", int64(7), mock.AnythingOfType("domain.KeywordExplanationPair")).Return(nil)

	service := NewPassageService(new(testutil.MockPassageRepository), keywordRepo, glossaryExplainer(), testutil.NewTestLogger())

	held := domain.Passage{
		{{Word: "the"}, {Word: "mutex"}, {Word: "guards"}},
	}

	updated, err := service.NewKeyword(context.Background(), 7, held, "mutex")

	require.NoError(t, err)
	assert.Equal(t, "mutual exclusion lock", updated[0][1].Explanation)
	assert.Empty(t, held[0][1].Explanation, "input passage untouched")
}

func TestPassageService_NewKeywordUnknownTerm(t *testing.T) {
	service := NewPassageService(new(testutil.MockPassageRepository), new(testutil.MockKeywordRepository), glossaryExplainer(), testutil.NewTestLogger())

	held := domain.Passage{{{Word: "gadget"}}}

	_, err := service.NewKeyword(context.Background(), 7, held, "gadget")

	assert.Error(t, err)
}

func TestPassageService_AddKnownWord(t *testing.T) {
	keywordRepo := new(testutil.MockKeywordRepository)
	keywordRepo.On("AddKnownKeyword", int64(7), "scheduler").Return(nil)

	service := NewPassageService(new(testutil.MockPassageRepository), keywordRepo, glossaryExplainer(), testutil.NewTestLogger())

	held := testutil.NewTestPassage()

	updated, err := service.AddKnownWord(7, held, "scheduler")

	require.NoError(t, err)
	assert.Empty(t, updated[0][1].Explanation, "explanation cleared")
	assert.NotEmpty(t, held[0][1].Explanation, "input passage untouched")
	keywordRepo.AssertExpectations(t)
}

// Marking the same word twice only ever upserts; the repository call is
// a conflict-ignoring insert, so the second call cannot fail or
// duplicate anything.
func TestPassageService_AddKnownWordIdempotent(t *testing.T) {
	keywordRepo := new(testutil.MockKeywordRepository)
	keywordRepo.On("AddKnownKeyword", int64(7), "scheduler").Return(nil).Twice()

	service := NewPassageService(new(testutil.MockPassageRepository), keywordRepo, glossaryExplainer(), testutil.NewTestLogger())

	first, err := service.AddKnownWord(7, testutil.NewTestPassage(), "scheduler")
	require.NoError(t, err)

	second, err := service.AddKnownWord(7, first, "Scheduler")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPassageService_SavedPassages(t *testing.T) {
	passageRepo := new(testutil.MockPassageRepository)
	passageRepo.On("GetPassagesByUser", int64(7)).Return([]domain.SavedPassage{
		{ID: 42, UserID: 7, Passage: testutil.NewTestPassage()},
	}, nil)

	service := NewPassageService(passageRepo, new(testutil.MockKeywordRepository), glossaryExplainer(), testutil.NewTestLogger())

	passages, err := service.SavedPassages(7)

	require.NoError(t, err)
	require.Len(t, passages, 1)
	assert.Equal(t, testutil.NewTestPassage(), passages[0].Passage)
}

func TestPassageService_SavePassageEmpty(t *testing.T) {
	service := NewPassageService(new(testutil.MockPassageRepository), new(testutil.MockKeywordRepository), glossaryExplainer(), testutil.NewTestLogger())

	_, err := service.SavePassage(7, nil)

	assert.Error(t, err)
}

func TestPassageService_DeletePassage(t *testing.T) {
	tests := []struct {
		name            string
		repoDeleted     bool
		repoError       error
		expectedDeleted bool
		expectedError   bool
	}{
		{name: "deleted", repoDeleted: true, expectedDeleted: true},
		{name: "not found", repoDeleted: false, expectedDeleted: false},
		{name: "database error", repoError: fmt.Errorf("db down"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passageRepo := new(testutil.MockPassageRepository)
			passageRepo.On("DeletePassage", int64(7), int64(42)).Return(tt.repoDeleted, tt.repoError)

			service := NewPassageService(passageRepo, new(testutil.MockKeywordRepository), glossaryExplainer(), testutil.NewTestLogger())

			deleted, err := service.DeletePassage(7, 42)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDeleted, deleted)
			}
		})
	}
}
