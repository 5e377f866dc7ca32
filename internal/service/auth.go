package service

import (
	"fmt"
	"time"

	"readhelper/internal/domain"
	"readhelper/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// ErrInvalidCredentials is returned on a wrong username or password.
var ErrInvalidCredentials = fmt.Errorf("invalid username or password")

// ErrWrongPassword is returned when the current password does not match
// during a password change.
var ErrWrongPassword = fmt.Errorf("current password is incorrect")

// ErrPasswordTooShort is returned when a new password is under the
// minimum length.
var ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)

// ErrDuplicateKeyword is returned when a profile update repeats a known
// keyword after normalization.
var ErrDuplicateKeyword = fmt.Errorf("keyword already exists")

// AuthService handles accounts and login sessions
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	keywordRepo repository.KeywordRepository
	sessionTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	keywordRepo repository.KeywordRepository,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		keywordRepo: keywordRepo,
		sessionTTL:  sessionTTL,
	}
}

// Signup registers an account and opens a session for it
func (s *AuthService) Signup(username, email, password, bio string) (*domain.User, *domain.Session, error) {
	if username == "" || email == "" {
		return nil, nil, fmt.Errorf("username and email are required")
	}
	if len(password) < MinPasswordLength {
		return nil, nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(username, email, string(hash), bio)
	if err != nil {
		return nil, nil, err
	}
	user.KnownKeywords = []string{}
	user.KeywordPairs = []domain.KeywordExplanationPair{}

	session, err := s.openSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login verifies credentials and opens a session
func (s *AuthService) Login(username, password string) (*domain.User, *domain.Session, error) {
	userID, hash, err := s.userRepo.GetCredentials(username)
	if err != nil {
		// Do not reveal whether the username exists
		return nil, nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.LoadUser(userID)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.openSession(userID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout ends the session for a token. Unknown tokens are ignored.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteSession(token)
}

// CurrentUser resolves a session token to its user. Returns nil when
// the token is unknown or expired; expired sessions are removed.
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessionRepo.GetSession(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.Expired(time.Now()) {
		_ = s.sessionRepo.DeleteSession(token)
		return nil, nil
	}

	return s.LoadUser(session.UserID)
}

// LoadUser assembles the full user model including known keywords and
// keyword history.
func (s *AuthService) LoadUser(userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	keywords, err := s.keywordRepo.GetKnownKeywords(userID)
	if err != nil {
		return nil, err
	}
	if keywords == nil {
		keywords = []string{}
	}
	user.KnownKeywords = keywords

	pairs, err := s.keywordRepo.GetKeywordPairs(userID)
	if err != nil {
		return nil, err
	}
	if pairs == nil {
		pairs = []domain.KeywordExplanationPair{}
	}
	user.KeywordPairs = pairs

	return user, nil
}

// UpdateProfile replaces email, bio and the known keyword set
func (s *AuthService) UpdateProfile(userID int64, email, bio string, knownKeywords []string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	var normalized []string
	for _, kw := range knownKeywords {
		next, added := domain.AppendKnownKeyword(normalized, kw)
		if !added {
			return nil, ErrDuplicateKeyword
		}
		normalized = next
	}

	if err := s.userRepo.UpdateProfile(userID, email, bio); err != nil {
		return nil, err
	}
	if err := s.keywordRepo.ReplaceKnownKeywords(userID, normalized); err != nil {
		return nil, err
	}

	return s.LoadUser(userID)
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(userID int64, currentPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := s.userRepo.GetPasswordHash(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(currentPassword)) != nil {
		return ErrWrongPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(userID, string(newHash))
}

// CleanupExpiredSessions removes sessions past their expiry
func (s *AuthService) CleanupExpiredSessions() (int64, error) {
	return s.sessionRepo.DeleteExpiredSessions()
}

func (s *AuthService) openSession(userID int64) (*domain.Session, error) {
	now := time.Now()
	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return &session, nil
}
