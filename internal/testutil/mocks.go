package testutil

import (
	"askbot/internal/domain"
	"askbot/internal/processor"

	"github.com/stretchr/testify/mock"
)

// MockQuestionRepository is a mock for repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetQuestion(chatID int64) (domain.Question, error) {
	args := m.Called(chatID)
	return args.Get(0).(domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) SetTopic(chatID int64, topic domain.Topic) error {
	args := m.Called(chatID, topic)
	return args.Error(0)
}

func (m *MockQuestionRepository) SetTitle(chatID int64, title string) error {
	args := m.Called(chatID, title)
	return args.Error(0)
}

func (m *MockQuestionRepository) SetBody(chatID int64, body string) error {
	args := m.Called(chatID, body)
	return args.Error(0)
}

func (m *MockQuestionRepository) Clear(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

// MockStageRepository is a mock for repository.StageRepository
type MockStageRepository struct {
	mock.Mock
}

func (m *MockStageRepository) GetStage(chatID int64) (domain.Stage, error) {
	args := m.Called(chatID)
	return args.Get(0).(domain.Stage), args.Error(1)
}

func (m *MockStageRepository) SetStage(chatID int64, stage domain.Stage) error {
	args := m.Called(chatID, stage)
	return args.Error(0)
}

// MockTransport is a mock for dispatcher.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(chatID int64, text string, keyboard [][]processor.Button) error {
	args := m.Called(chatID, text, keyboard)
	return args.Error(0)
}

// MockChannelTransport is a mock for service.ChannelTransport
type MockChannelTransport struct {
	mock.Mock
}

func (m *MockChannelTransport) SendTo(channelID string, text string) error {
	args := m.Called(channelID, text)
	return args.Error(0)
}

// MockPublisher is a mock for dispatcher.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(q domain.Question) error {
	args := m.Called(q)
	return args.Error(0)
}
