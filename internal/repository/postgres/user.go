package postgres

import (
	"database/sql"
	"fmt"

	"readhelper/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ErrUsernameTaken is returned when signup hits a duplicate username.
var ErrUsernameTaken = fmt.Errorf("username already taken")

// ErrUserNotFound is returned when a username or id does not exist.
var ErrUserNotFound = fmt.Errorf("user not found")

// CreateUser inserts a new account and returns it
func (r *UserRepo) CreateUser(username, email, passwordHash, bio string) (*domain.User, error) {
	var u domain.User
	query := `
		INSERT INTO users (username, email, password_hash, bio)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
		RETURNING id, username, email, bio, created_at
	`
	err := r.db.QueryRow(query, username, email, passwordHash, bio).Scan(
		&u.ID, &u.Username, &u.Email, &u.Bio, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID loads the account fields for a user id
func (r *UserRepo) GetUserByID(userID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, username, email, bio, created_at FROM users WHERE id = $1`
	err := r.db.QueryRow(query, userID).Scan(&u.ID, &u.Username, &u.Email, &u.Bio, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetCredentials returns the id and password hash for a username
func (r *UserRepo) GetCredentials(username string) (int64, string, error) {
	var userID int64
	var hash string
	query := `SELECT id, password_hash FROM users WHERE username = $1`
	err := r.db.QueryRow(query, username).Scan(&userID, &hash)

	if err == sql.ErrNoRows {
		return 0, "", ErrUserNotFound
	}
	if err != nil {
		return 0, "", err
	}
	return userID, hash, nil
}

// GetPasswordHash returns the stored password hash for a user id
func (r *UserRepo) GetPasswordHash(userID int64) (string, error) {
	var hash string
	query := `SELECT password_hash FROM users WHERE id = $1`
	err := r.db.QueryRow(query, userID).Scan(&hash)

	if err == sql.ErrNoRows {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return hash, nil
}

// UpdateProfile replaces the email and bio fields
func (r *UserRepo) UpdateProfile(userID int64, email, bio string) error {
	query := `UPDATE users SET email = $1, bio = $2 WHERE id = $3`
	_, err := r.db.Exec(query, email, bio, userID)
	return err
}

// UpdatePassword replaces the stored password hash
func (r *UserRepo) UpdatePassword(userID int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`
	_, err := r.db.Exec(query, passwordHash, userID)
	return err
}
