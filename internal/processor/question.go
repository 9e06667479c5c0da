package processor

import "askbot/internal/domain"

// QuestionProcessor collects the question body and shows
// the confirmation menu
type QuestionProcessor struct {
	questions QuestionWriter
}

// NewQuestionProcessor creates the QUESTION stage processor
func NewQuestionProcessor(questions QuestionWriter) *QuestionProcessor {
	return &QuestionProcessor{questions: questions}
}

func (p *QuestionProcessor) OwnedStage() domain.Stage {
	return domain.StageQuestion
}

func (p *QuestionProcessor) Process(in Incoming, q domain.Question) (Action, error) {
	body := textFrom(in)
	if body == "" {
		return stay(domain.StageQuestion, Send{
			Text: "Отправь текст вопроса",
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
			{Text: "Всё верно?", Keyboard: EditKeyboard()},
		},
	}, nil
}
