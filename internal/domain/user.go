package domain

import "time"

// User represents a registered reader profile.
type User struct {
	ID            int64                    `json:"id"`
	Username      string                   `json:"username"`
	Email         string                   `json:"email"`
	Bio           string                   `json:"bio,omitempty"`
	KnownKeywords []string                 `json:"known_keywords"`
	KeywordPairs  []KeywordExplanationPair `json:"all_keyword_explanation_pairs"`
	CreatedAt     time.Time                `json:"-"`
}

// KeywordExplanationPair is a durable history record of a keyword the
// user looked up, independent of any passage position.
type KeywordExplanationPair struct {
	Keyword     string `json:"keyword"`
	Explanation string `json:"explanation"`
	Reason      string `json:"reason,omitempty"`
}

// Session is a server-side login session identified by an opaque token
// carried in a cookie.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
