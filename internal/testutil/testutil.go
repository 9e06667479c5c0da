package testutil

import (
	"askbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestQuestion creates a complete test question
func NewTestQuestion(chatID int64) domain.Question {
	return domain.Question{
		ChatID: chatID,
		Topic:  domain.TopicScience,
		Title:  "Почему небо голубое?",
		Body:   "Давно интересует, объясните простыми словами.",
	}
}
