package testutil

import (
	"time"

	"readhelper/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, username string) *domain.User {
	return &domain.User{
		ID:            userID,
		Username:      username,
		Email:         username + "@example.com",
		KnownKeywords: []string{},
		KeywordPairs:  []domain.KeywordExplanationPair{},
		CreatedAt:     time.Now(),
	}
}

// NewTestSession creates an unexpired test session
func NewTestSession(token string, userID int64) *domain.Session {
	now := time.Now()
	return &domain.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

// NewTestPassage creates a small annotated passage
func NewTestPassage() domain.Passage {
	return domain.Passage{
		{
			{Word: "The"},
			{Word: "scheduler", Explanation: "assigns runnable work to processors"},
			{Word: "preempts"},
			{Word: "goroutines."},
		},
	}
}
