package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"askbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestQuestionRepo_GetQuestion(t *testing.T) {
	tests := []struct {
		name      string
		chatID    int64
		mockRows  *sqlmock.Rows
		mockError error
		expected  domain.Question
		expectErr bool
	}{
		{
			name:   "full question",
			chatID: 123,
			mockRows: sqlmock.NewRows([]string{"topic", "title", "body"}).
				AddRow("Наука", "Почему небо голубое?", "Объясните простыми словами."),
			expected: domain.Question{
				ChatID: 123,
				Topic:  domain.TopicScience,
				Title:  "Почему небо голубое?",
				Body:   "Объясните простыми словами.",
			},
		},
		{
			name:   "partial question with null fields",
			chatID: 123,
			mockRows: sqlmock.NewRows([]string{"topic", "title", "body"}).
				AddRow("Наука", nil, nil),
			expected: domain.Question{
				ChatID: 123,
				Topic:  domain.TopicScience,
			},
		},
		{
			name:      "never-seen conversation reads empty",
			chatID:    456,
			mockError: sql.ErrNoRows,
			expected:  domain.Question{ChatID: 456},
		},
		{
			name:      "database error",
			chatID:    123,
			mockError: fmt.Errorf("connection refused"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewQuestionRepo(db)

			query := "SELECT topic, title, body FROM questions WHERE chat_id = \\$1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.chatID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.chatID).WillReturnRows(tt.mockRows)
			}

			q, err := repo.GetQuestion(tt.chatID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, q)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionRepo_SetTopic(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	mock.ExpectExec("INSERT INTO questions").
		WithArgs(int64(123), "Наука").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SetTopic(123, domain.TopicScience)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepo_SetTitle(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	mock.ExpectExec("INSERT INTO questions").
		WithArgs(int64(123), "Почему небо голубое?").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SetTitle(123, "Почему небо голубое?")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepo_SetBody(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	mock.ExpectExec("INSERT INTO questions").
		WithArgs(int64(123), "Объясните простыми словами.").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SetBody(123, "Объясните простыми словами.")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepo_Clear(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	mock.ExpectExec("DELETE FROM questions").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Clear(123)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
