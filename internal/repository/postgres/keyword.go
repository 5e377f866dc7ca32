package postgres

import (
	"database/sql"

	"github.com/lib/pq"

	"readhelper/internal/domain"
)

// KeywordRepo implements repository.KeywordRepository
type KeywordRepo struct {
	db *sql.DB
}

// NewKeywordRepo creates a new keyword repository
func NewKeywordRepo(db *sql.DB) *KeywordRepo {
	return &KeywordRepo{db: db}
}

// GetKnownKeywords returns the user's known keywords in insertion order
func (r *KeywordRepo) GetKnownKeywords(userID int64) ([]string, error) {
	query := `
		SELECT keyword FROM known_keywords
		WHERE user_id = $1
		ORDER BY created_at, keyword
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, err
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}

// AddKnownKeyword inserts a keyword; adding it again is a no-op
func (r *KeywordRepo) AddKnownKeyword(userID int64, keyword string) error {
	query := `
		INSERT INTO known_keywords (user_id, keyword)
		VALUES ($1, $2)
		ON CONFLICT (user_id, keyword) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, keyword)
	return err
}

// ReplaceKnownKeywords swaps the full keyword set in one transaction
func (r *KeywordRepo) ReplaceKnownKeywords(userID int64, keywords []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM known_keywords WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, kw := range keywords {
		if _, err := tx.Exec(
			`INSERT INTO known_keywords (user_id, keyword) VALUES ($1, $2) ON CONFLICT (user_id, keyword) DO NOTHING`,
			userID, kw,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// AddKeywordPair appends a keyword-explanation record to the history
func (r *KeywordRepo) AddKeywordPair(userID int64, pair domain.KeywordExplanationPair) error {
	query := `
		INSERT INTO keyword_history (user_id, keyword, explanation, reason)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, userID, pair.Keyword, pair.Explanation, pair.Reason)
	return err
}

// GetKeywordPairs returns the user's keyword history, oldest first
func (r *KeywordRepo) GetKeywordPairs(userID int64) ([]domain.KeywordExplanationPair, error) {
	query := `
		SELECT keyword, explanation, reason FROM keyword_history
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []domain.KeywordExplanationPair
	for rows.Next() {
		var p domain.KeywordExplanationPair
		if err := rows.Scan(&p.Keyword, &p.Explanation, &p.Reason); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

// ClearKeywordHistory removes every history record for the user
func (r *KeywordRepo) ClearKeywordHistory(userID int64) error {
	query := `DELETE FROM keyword_history WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}

// ClearKeywords removes history records for the named keywords only
func (r *KeywordRepo) ClearKeywords(userID int64, keywords []string) error {
	query := `DELETE FROM keyword_history WHERE user_id = $1 AND keyword = ANY($2)`
	_, err := r.db.Exec(query, userID, pq.Array(keywords))
	return err
}
