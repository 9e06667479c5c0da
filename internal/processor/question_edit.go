package processor

import "askbot/internal/domain"

// QuestionEditProcessor replaces the body of an assembled question
// and returns to the confirmation menu
type QuestionEditProcessor struct {
	questions QuestionWriter
}

// NewQuestionEditProcessor creates the QUESTION_EDIT stage processor
func NewQuestionEditProcessor(questions QuestionWriter) *QuestionEditProcessor {
	return &QuestionEditProcessor{questions: questions}
}

func (p *QuestionEditProcessor) OwnedStage() domain.Stage {
	return domain.StageQuestionEdit
}

func (p *QuestionEditProcessor) Process(in Incoming, q domain.Question) (Action, error) {
	body := textFrom(in)
	if body == "" {
		return stay(domain.StageQuestionEdit, Send{
			Text: "Отправь новый текст вопроса",
		}), nil
	}

	if err := p.questions.SetBody(in.ChatID, body); err != nil {
		return Action{}, err
	}

	q.Body = body
	return Action{
		Next: domain.StageFinal,
		Sends: []Send{
			{Text: q.Render()},
			{Text: "Вопрос исправлен, что дальше?", Keyboard: EditKeyboard()},
		},
	}, nil
}
