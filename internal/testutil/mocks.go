package testutil

import (
	"readhelper/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(username, email, passwordHash, bio string) (*domain.User, error) {
	args := m.Called(username, email, passwordHash, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetCredentials(username string) (int64, string, error) {
	args := m.Called(username)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockUserRepository) GetPasswordHash(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(userID int64, email, bio string) error {
	args := m.Called(userID, email, bio)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID int64, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(session domain.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(token string) (*domain.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpiredSessions() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockKeywordRepository is a mock for KeywordRepository
type MockKeywordRepository struct {
	mock.Mock
}

func (m *MockKeywordRepository) GetKnownKeywords(userID int64) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockKeywordRepository) AddKnownKeyword(userID int64, keyword string) error {
	args := m.Called(userID, keyword)
	return args.Error(0)
}

func (m *MockKeywordRepository) ReplaceKnownKeywords(userID int64, keywords []string) error {
	args := m.Called(userID, keywords)
	return args.Error(0)
}

func (m *MockKeywordRepository) AddKeywordPair(userID int64, pair domain.KeywordExplanationPair) error {
	args := m.Called(userID, pair)
	return args.Error(0)
}

func (m *MockKeywordRepository) GetKeywordPairs(userID int64) ([]domain.KeywordExplanationPair, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KeywordExplanationPair), args.Error(1)
}

func (m *MockKeywordRepository) ClearKeywordHistory(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockKeywordRepository) ClearKeywords(userID int64, keywords []string) error {
	args := m.Called(userID, keywords)
	return args.Error(0)
}

// MockPassageRepository is a mock for PassageRepository
type MockPassageRepository struct {
	mock.Mock
}

func (m *MockPassageRepository) SavePassage(userID int64, passage domain.Passage) (int64, error) {
	args := m.Called(userID, passage)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPassageRepository) GetPassagesByUser(userID int64) ([]domain.SavedPassage, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedPassage), args.Error(1)
}

func (m *MockPassageRepository) DeletePassage(userID, passageID int64) (bool, error) {
	args := m.Called(userID, passageID)
	return args.Bool(0), args.Error(1)
}
