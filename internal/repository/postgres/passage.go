package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"readhelper/internal/domain"
)

// PassageRepo implements repository.PassageRepository
type PassageRepo struct {
	db *sql.DB
}

// NewPassageRepo creates a new passage repository
func NewPassageRepo(db *sql.DB) *PassageRepo {
	return &PassageRepo{db: db}
}

// SavePassage stores an annotated passage as JSONB and returns its id
func (r *PassageRepo) SavePassage(userID int64, passage domain.Passage) (int64, error) {
	encoded, err := json.Marshal(passage)
	if err != nil {
		return 0, fmt.Errorf("encode passage: %w", err)
	}

	var id int64
	query := `
		INSERT INTO saved_passages (user_id, passage)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRow(query, userID, encoded).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetPassagesByUser returns the user's saved passages, newest first
func (r *PassageRepo) GetPassagesByUser(userID int64) ([]domain.SavedPassage, error) {
	query := `
		SELECT id, passage FROM saved_passages
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passages []domain.SavedPassage
	for rows.Next() {
		var sp domain.SavedPassage
		var encoded []byte
		if err := rows.Scan(&sp.ID, &encoded); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(encoded, &sp.Passage); err != nil {
			return nil, fmt.Errorf("decode passage %d: %w", sp.ID, err)
		}
		sp.UserID = userID
		passages = append(passages, sp)
	}
	return passages, rows.Err()
}

// DeletePassage removes one saved passage owned by the user. Returns
// false when no such passage exists for this user.
func (r *PassageRepo) DeletePassage(userID, passageID int64) (bool, error) {
	query := `DELETE FROM saved_passages WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, passageID, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
