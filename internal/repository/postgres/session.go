package postgres

import (
	"database/sql"

	"readhelper/internal/domain"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// CreateSession stores a new login session
func (r *SessionRepo) CreateSession(session domain.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, session.Token, session.UserID, session.CreatedAt, session.ExpiresAt)
	return err
}

// GetSession looks up a session by token
func (r *SessionRepo) GetSession(token string) (*domain.Session, error) {
	var s domain.Session
	query := `SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = $1`
	err := r.db.QueryRow(query, token).Scan(&s.Token, &s.UserID, &s.CreatedAt, &s.ExpiresAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes a session by token
func (r *SessionRepo) DeleteSession(token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	_, err := r.db.Exec(query, token)
	return err
}

// DeleteExpiredSessions removes all sessions past their expiry
func (r *SessionRepo) DeleteExpiredSessions() (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= NOW()`
	result, err := r.db.Exec(query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
