package processor

import "askbot/internal/domain"

// FinalProcessor handles the confirmation menu: a confirm press
// publishes the question and resets the conversation, an edit press
// routes to the matching edit stage. The edit itself is handled by
// the edit processor on the next message, not here.
type FinalProcessor struct{}

// NewFinalProcessor creates the FINAL stage processor
func NewFinalProcessor() *FinalProcessor {
	return &FinalProcessor{}
}

func (p *FinalProcessor) OwnedStage() domain.Stage {
	return domain.StageFinal
}

func (p *FinalProcessor) Process(in Incoming, q domain.Question) (Action, error) {
	switch in.Callback {
	case CallbackEditTopic:
		return Action{
			Next: domain.StageTopicEdit,
			Sends: []Send{{
				Text:     "Выбери новую тему:",
				Keyboard: TopicKeyboard(),
			}},
		}, nil

	case CallbackEditTitle:
		return Action{
			Next: domain.StageTitleEdit,
			Sends: []Send{{
				Text: "Отправь новый заголовок",
			}},
		}, nil

	case CallbackEditQuestion:
		return Action{
			Next: domain.StageQuestionEdit,
			Sends: []Send{{
				Text: "Отправь новый текст вопроса",
			}},
		}, nil

	case CallbackConfirm:
		// The stage machine only reaches FINAL with all fields set;
		// an incomplete question here means a stale menu press
		if !q.Complete() {
			return stay(domain.StageFinal, Send{
				Text:     "Вопрос ещё не готов, что исправим?",
				Keyboard: EditKeyboard(),
			}), nil
		}
		return Action{
			Next:    domain.StageNone,
			Publish: &q,
			Sends: []Send{{
				Text: "Вопрос отправлен, спасибо!",
			}},
		}, nil
	}

	return stay(domain.StageFinal, Send{
		Text:     "Нажми на кнопку",
		Keyboard: EditKeyboard(),
	}), nil
}
