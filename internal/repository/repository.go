package repository

import (
	"readhelper/internal/domain"
)

// UserRepository defines user account operations
type UserRepository interface {
	CreateUser(username, email, passwordHash, bio string) (*domain.User, error)
	GetUserByID(userID int64) (*domain.User, error)
	GetCredentials(username string) (userID int64, passwordHash string, err error)
	GetPasswordHash(userID int64) (string, error)
	UpdateProfile(userID int64, email, bio string) error
	UpdatePassword(userID int64, passwordHash string) error
}

// SessionRepository defines login session operations
type SessionRepository interface {
	CreateSession(session domain.Session) error
	GetSession(token string) (*domain.Session, error)
	DeleteSession(token string) error
	DeleteExpiredSessions() (int64, error)
}

// KeywordRepository defines known-keyword and history operations
type KeywordRepository interface {
	GetKnownKeywords(userID int64) ([]string, error)
	AddKnownKeyword(userID int64, keyword string) error
	ReplaceKnownKeywords(userID int64, keywords []string) error
	AddKeywordPair(userID int64, pair domain.KeywordExplanationPair) error
	GetKeywordPairs(userID int64) ([]domain.KeywordExplanationPair, error)
	ClearKeywordHistory(userID int64) error
	ClearKeywords(userID int64, keywords []string) error
}

// PassageRepository defines saved passage operations
type PassageRepository interface {
	SavePassage(userID int64, passage domain.Passage) (int64, error)
	GetPassagesByUser(userID int64) ([]domain.SavedPassage, error)
	DeletePassage(userID, passageID int64) (bool, error)
}
