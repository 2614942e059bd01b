package postgres

import (
	"context"
	"fmt"
	"testing"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestWordRepo_Load(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expected      []domain.WordEntry
		expectedErr   error
		expectedError bool
	}{
		{
			name: "entries found",
			mockRows: sqlmock.NewRows([]string{"id", "term", "meaning"}).
				AddRow(1, "dig", "掘る").
				AddRow(2, "rest", "休み"),
			expected: []domain.WordEntry{
				{ID: 1, Term: "dig", Meaning: "掘る"},
				{ID: 2, Term: "rest", Meaning: "休み"},
			},
		},
		{
			name:          "empty table is a cache miss",
			mockRows:      sqlmock.NewRows([]string{"id", "term", "meaning"}),
			expectedErr:   repository.ErrCacheMiss,
			expectedError: true,
		},
		{
			name:          "query error",
			mockError:     fmt.Errorf("relation does not exist"),
			expectedError: true,
		},
		{
			name: "scan error",
			mockRows: sqlmock.NewRows([]string{"id", "term", "meaning"}).
				AddRow("invalid", "dig", "掘る"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			query := "SELECT id, term, meaning FROM word_entries ORDER BY id"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			entries, err := repo.Load(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, entries)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, entries)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)
	entries := []domain.WordEntry{
		{ID: 1, Term: "dig", Meaning: "掘る"},
		{ID: 2, Term: "rest", Meaning: "休み"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM word_entries").WillReturnResult(sqlmock.NewResult(0, 5))
	prep := mock.ExpectPrepare("INSERT INTO word_entries")
	prep.ExpectExec().WithArgs(int64(1), "dig", "掘る").WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs(int64(2), "rest", "休み").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err = repo.Save(context.Background(), entries)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Save_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM word_entries").WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare("INSERT INTO word_entries")
	prep.ExpectExec().WithArgs(int64(1), "dig", "掘る").WillReturnError(fmt.Errorf("duplicate key"))
	mock.ExpectRollback()

	err = repo.Save(context.Background(), []domain.WordEntry{{ID: 1, Term: "dig", Meaning: "掘る"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "word 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Save_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectBegin().WillReturnError(fmt.Errorf("connection refused"))

	err = repo.Save(context.Background(), nil)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_create_word_entries.up.sql")
	assert.Contains(t, names, "000001_create_word_entries.down.sql")
}
