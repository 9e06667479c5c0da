package postgres

import (
	"database/sql"

	"askbot/internal/domain"
)

// QuestionRepo implements repository.QuestionRepository
type QuestionRepo struct {
	db *sql.DB
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *sql.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetQuestion returns the stored question for the conversation.
// A conversation that was never seen reads as an empty question.
func (r *QuestionRepo) GetQuestion(chatID int64) (domain.Question, error) {
	q := domain.Question{ChatID: chatID}
	var topic, title, body sql.NullString

	query := `SELECT topic, title, body FROM questions WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&topic, &title, &body)

	if err == sql.ErrNoRows {
		return q, nil
	}
	if err != nil {
		return q, err
	}

	q.Topic = domain.Topic(topic.String)
	q.Title = title.String
	q.Body = body.String
	return q, nil
}

// SetTopic upserts only the topic field
func (r *QuestionRepo) SetTopic(chatID int64, topic domain.Topic) error {
	query := `
		INSERT INTO questions (chat_id, topic)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET topic = EXCLUDED.topic
	`
	_, err := r.db.Exec(query, chatID, string(topic))
	return err
}

// SetTitle upserts only the title field
func (r *QuestionRepo) SetTitle(chatID int64, title string) error {
	query := `
		INSERT INTO questions (chat_id, title)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET title = EXCLUDED.title
	`
	_, err := r.db.Exec(query, chatID, title)
	return err
}

// SetBody upserts only the body field
func (r *QuestionRepo) SetBody(chatID int64, body string) error {
	query := `
		INSERT INTO questions (chat_id, body)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET body = EXCLUDED.body
	`
	_, err := r.db.Exec(query, chatID, body)
	return err
}

// Clear removes the stored question after publication
func (r *QuestionRepo) Clear(chatID int64) error {
	query := `DELETE FROM questions WHERE chat_id = $1`
	_, err := r.db.Exec(query, chatID)
	return err
}
