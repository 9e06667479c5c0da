package processor

import "askbot/internal/domain"

// topicFrom extracts the selected topic from an incoming message.
// Topics normally arrive as a keyboard callback; free text naming
// a topic exactly is accepted too.
func topicFrom(in Incoming) (domain.Topic, bool) {
	if t, ok := domain.TopicByName(in.Callback); ok {
		return t, true
	}
	return domain.TopicByName(in.Text)
}

// TopicProcessor handles topic selection for a fresh submission
type TopicProcessor struct {
	questions QuestionWriter
}

// QuestionWriter is the slice of the question repository the
// processors need
type QuestionWriter interface {
	SetTopic(chatID int64, topic domain.Topic) error
	SetTitle(chatID int64, title string) error
	SetBody(chatID int64, body string) error
}

// NewTopicProcessor creates the TOPIC stage processor
func NewTopicProcessor(questions QuestionWriter) *TopicProcessor {
	return &TopicProcessor{questions: questions}
}

func (p *TopicProcessor) OwnedStage() domain.Stage {
	return domain.StageTopic
}

func (p *TopicProcessor) Process(in Incoming, q domain.Question) (Action, error) {
	topic, ok := topicFrom(in)
	if !ok {
		return stay(domain.StageTopic, Send{
			Text:     "Нажми на кнопку с темой",
			Keyboard: TopicKeyboard(),
		}), nil
	}

	if err := p.questions.SetTopic(in.ChatID, topic); err != nil {
		return Action{}, err
	}

	return Action{
		Next: domain.StageTitle,
		Sends: []Send{{
			Text: "Тема: " + string(topic) + ". Теперь отправь заголовок вопроса.",
		}},
	}, nil
}
