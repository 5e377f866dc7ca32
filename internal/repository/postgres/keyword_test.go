package postgres

import (
	"testing"

	"readhelper/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestKeywordRepo_AddKnownKeyword(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
	}{
		{name: "new keyword", rowsAffected: 1},
		{name: "duplicate is a no-op", rowsAffected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewKeywordRepo(db)

			mock.ExpectExec("INSERT INTO known_keywords").
				WithArgs(int64(7), "api").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.AddKnownKeyword(7, "api")

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestKeywordRepo_GetKnownKeywords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKeywordRepo(db)

	mock.ExpectQuery("SELECT keyword FROM known_keywords").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"keyword"}).AddRow("api").AddRow("mutex"))

	keywords, err := repo.GetKnownKeywords(7)

	assert.NoError(t, err)
	assert.Equal(t, []string{"api", "mutex"}, keywords)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeywordRepo_ReplaceKnownKeywords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKeywordRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM known_keywords").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO known_keywords").
		WithArgs(int64(7), "api").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO known_keywords").
		WithArgs(int64(7), "goroutine").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.ReplaceKnownKeywords(7, []string{"api", "goroutine"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeywordRepo_AddKeywordPair(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKeywordRepo(db)

	mock.ExpectExec("INSERT INTO keyword_history").
		WithArgs(int64(7), "mutex", "mutual exclusion lock", "uncommon term").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.AddKeywordPair(7, domain.KeywordExplanationPair{
		Keyword:     "mutex",
		Explanation: "mutual exclusion lock",
		Reason:      "uncommon term",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeywordRepo_GetKeywordPairs(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKeywordRepo(db)

	mock.ExpectQuery("SELECT keyword, explanation, reason FROM keyword_history").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"keyword", "explanation", "reason"}).
			AddRow("mutex", "mutual exclusion lock", ""))

	pairs, err := repo.GetKeywordPairs(7)

	assert.NoError(t, err)
	assert.Len(t, pairs, 1)
	assert.Equal(t, "mutex", pairs[0].Keyword)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeywordRepo_ClearKeywordHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKeywordRepo(db)

	mock.ExpectExec("DELETE FROM keyword_history WHERE user_id").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	assert.NoError(t, repo.ClearKeywordHistory(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeywordRepo_ClearKeywords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKeywordRepo(db)

	mock.ExpectExec("DELETE FROM keyword_history").
		WithArgs(int64(7), pq.Array([]string{"api", "mutex"})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.ClearKeywords(7, []string{"api", "mutex"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
