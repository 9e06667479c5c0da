package processor

import (
	"testing"

	"askbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func completeQuestion() domain.Question {
	return domain.Question{
		ChatID: 1,
		Topic:  domain.TopicScience,
		Title:  "Почему небо голубое?",
		Body:   "Объясните простыми словами.",
	}
}

func TestFinalProcessor_ConfirmPublishesAndResets(t *testing.T) {
	p := NewFinalProcessor()
	assert.Equal(t, domain.StageFinal, p.OwnedStage())

	q := completeQuestion()
	act, err := p.Process(Incoming{ChatID: 1, Callback: CallbackConfirm}, q)

	assert.NoError(t, err)
	assert.Equal(t, domain.StageNone, act.Next)
	assert.NotNil(t, act.Publish)
	assert.Equal(t, q, *act.Publish)
	assert.Len(t, act.Sends, 1)
}

func TestFinalProcessor_EditSelectionsRouteToEditStages(t *testing.T) {
	tests := []struct {
		callback     string
		expectedNext domain.Stage
		hasKeyboard  bool
	}{
		{CallbackEditTopic, domain.StageTopicEdit, true},
		{CallbackEditTitle, domain.StageTitleEdit, false},
		{CallbackEditQuestion, domain.StageQuestionEdit, false},
	}

	p := NewFinalProcessor()
	for _, tt := range tests {
		t.Run(tt.callback, func(t *testing.T) {
			act, err := p.Process(Incoming{ChatID: 1, Callback: tt.callback}, completeQuestion())

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedNext, act.Next)
			assert.Nil(t, act.Publish)
			assert.Len(t, act.Sends, 1)
			if tt.hasKeyboard {
				assert.NotEmpty(t, act.Sends[0].Keyboard)
			}
		})
	}
}

func TestFinalProcessor_UnexpectedInputStays(t *testing.T) {
	p := NewFinalProcessor()

	for _, in := range []Incoming{
		{ChatID: 1, Text: "просто текст"},
		{ChatID: 1, Callback: "что-то-левое"},
		{ChatID: 1},
	} {
		act, err := p.Process(in, completeQuestion())

		assert.NoError(t, err)
		assert.Equal(t, domain.StageFinal, act.Next)
		assert.Nil(t, act.Publish)
		assert.Equal(t, EditKeyboard(), act.Sends[0].Keyboard)
	}
}

func TestFinalProcessor_IncompleteQuestionNotPublished(t *testing.T) {
	p := NewFinalProcessor()

	q := completeQuestion()
	q.Body = ""

	act, err := p.Process(Incoming{ChatID: 1, Callback: CallbackConfirm}, q)

	assert.NoError(t, err)
	assert.Equal(t, domain.StageFinal, act.Next)
	assert.Nil(t, act.Publish)
}
