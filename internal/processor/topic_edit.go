package processor

import "askbot/internal/domain"

// TopicEditProcessor replaces the topic of an assembled question
// and returns to the confirmation menu
type TopicEditProcessor struct {
	questions QuestionWriter
}

// NewTopicEditProcessor creates the TOPIC_EDIT stage processor
func NewTopicEditProcessor(questions QuestionWriter) *TopicEditProcessor {
	return &TopicEditProcessor{questions: questions}
}

func (p *TopicEditProcessor) OwnedStage() domain.Stage {
	return domain.StageTopicEdit
}

func (p *TopicEditProcessor) Process(in Incoming, q domain.Question) (Action, error) {
	topic, ok := topicFrom(in)
	if !ok {
		return stay(domain.StageTopicEdit, Send{
			Text:     "Чтобы исправить тему, нажми на кнопку",
			Keyboard: TopicKeyboard(),
		}), nil
	}

	if err := p.questions.SetTopic(in.ChatID, topic); err != nil {
		return Action{}, err
	}

	q.Topic = topic
	return Action{
		Next: domain.StageFinal,
		Sends: []Send{
			{Text: q.Render()},
			{Text: "Тема исправлена, что дальше?", Keyboard: EditKeyboard()},
		},
	}, nil
}
