package repository

import "askbot/internal/domain"

// QuestionRepository defines persistence for in-progress submissions.
// All setters are single-field upserts: they create the record if it is
// absent and never touch the other fields.
type QuestionRepository interface {
	GetQuestion(chatID int64) (domain.Question, error)
	SetTopic(chatID int64, topic domain.Topic) error
	SetTitle(chatID int64, title string) error
	SetBody(chatID int64, body string) error
	Clear(chatID int64) error
}

// StageRepository defines persistence for the conversation stage
type StageRepository interface {
	GetStage(chatID int64) (domain.Stage, error)
	SetStage(chatID int64, stage domain.Stage) error
}
