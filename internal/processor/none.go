package processor

import "askbot/internal/domain"

// NoneProcessor greets the user and starts a new submission.
// Any input moves the conversation to topic selection.
type NoneProcessor struct{}

// NewNoneProcessor creates the NONE stage processor
func NewNoneProcessor() *NoneProcessor {
	return &NoneProcessor{}
}

func (p *NoneProcessor) OwnedStage() domain.Stage {
	return domain.StageNone
}

func (p *NoneProcessor) Process(in Incoming, q domain.Question) (Action, error) {
	return Action{
		Next: domain.StageTopic,
		Sends: []Send{{
			Text:     "Привет! Выбери тему вопроса:",
			Keyboard: TopicKeyboard(),
		}},
	}, nil
}
