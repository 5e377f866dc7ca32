// Package controller mediates user actions on an annotated passage and
// merges backend responses back into client state. The backend is the
// authoritative source of truth: every mutation answers with a full
// replacement passage and the controller swaps its held passage
// wholesale, never merging field by field.
package controller

import (
	"context"
	"errors"
	"sync"

	"readhelper/internal/domain"

	"go.uber.org/zap"
)

// ErrLookupPending is returned when a word lookup is requested while
// another one is still in flight. At most one lookup runs at a time;
// duplicate clicks must not issue duplicate requests.
var ErrLookupPending = errors.New("a word lookup is already in progress")

// ErrWordNotInPassage is returned when the requested word does not
// occur in the held passage.
var ErrWordNotInPassage = errors.New("word not found in passage")

// PassageAPI is the slice of the backend client the controller needs.
type PassageAPI interface {
	Annotate(ctx context.Context, passage string) (domain.Passage, error)
	NewKeyword(ctx context.Context, passage domain.Passage, word string) (domain.Passage, error)
	AddKnownWord(ctx context.Context, passage domain.Passage, word string) (domain.Passage, error)
	SavePassage(ctx context.Context, passage domain.Passage) error
}

// Controller owns the in-memory passage for one reading session.
type Controller struct {
	api    PassageAPI
	logger *zap.Logger

	mu          sync.Mutex
	passage     domain.Passage
	pendingWord string
}

// New creates a controller with an empty passage.
func New(api PassageAPI, logger *zap.Logger) *Controller {
	return &Controller{api: api, logger: logger}
}

// Passage returns the currently held passage.
func (c *Controller) Passage() domain.Passage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passage
}

// PendingWord returns the word whose lookup is in flight, or "".
func (c *Controller) PendingWord() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingWord
}

// Submit annotates a new raw passage and replaces the held one. It is
// independent of the word-lookup gate; if a lookup races with it, the
// later completion wins.
func (c *Controller) Submit(ctx context.Context, passage string) (domain.Passage, error) {
	annotated, err := c.api.Annotate(ctx, passage)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.passage = annotated
	c.mu.Unlock()

	c.logger.Info("passage annotated", zap.Int("paragraphs", len(annotated)))
	return annotated, nil
}

// RequestExplanation asks the backend to explain one unexplained word.
// Only one lookup may be in flight; a second request while pending
// returns ErrLookupPending without touching the network. On failure the
// held passage is left unchanged.
func (c *Controller) RequestExplanation(ctx context.Context, word string) (domain.Passage, error) {
	c.mu.Lock()
	if c.pendingWord != "" {
		c.mu.Unlock()
		return nil, ErrLookupPending
	}
	if !c.passage.ContainsWord(word) {
		c.mu.Unlock()
		return nil, ErrWordNotInPassage
	}
	c.pendingWord = word
	snapshot := c.passage
	c.mu.Unlock()

	updated, err := c.api.NewKeyword(ctx, snapshot, word)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingWord = ""
	if err != nil {
		c.logger.Warn("word lookup failed", zap.String("word", word), zap.Error(err))
		return nil, err
	}

	c.passage = updated
	return updated, nil
}

// MarkKnown tells the backend the user no longer needs this word
// explained. Idempotent: marking an already-known word again is not an
// error and does not duplicate anything server-side. Independent of the
// lookup gate.
func (c *Controller) MarkKnown(ctx context.Context, word string) (domain.Passage, error) {
	c.mu.Lock()
	if !c.passage.ContainsWord(word) {
		c.mu.Unlock()
		return nil, ErrWordNotInPassage
	}
	snapshot := c.passage
	c.mu.Unlock()

	updated, err := c.api.AddKnownWord(ctx, snapshot, word)
	if err != nil {
		c.logger.Warn("mark known failed", zap.String("word", word), zap.Error(err))
		return nil, err
	}

	c.mu.Lock()
	c.passage = updated
	c.mu.Unlock()
	return updated, nil
}

// Save persists the held passage to the user's history.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	snapshot := c.passage
	c.mu.Unlock()

	return c.api.SavePassage(ctx, snapshot)
}
