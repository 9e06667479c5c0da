package processor

import "askbot/internal/domain"

// TitleEditProcessor replaces the title of an assembled question
// and returns to the confirmation menu
type TitleEditProcessor struct {
	questions QuestionWriter
}

// NewTitleEditProcessor creates the TITLE_EDIT stage processor
func NewTitleEditProcessor(questions QuestionWriter) *TitleEditProcessor {
	return &TitleEditProcessor{questions: questions}
}

func (p *TitleEditProcessor) OwnedStage() domain.Stage {
	return domain.StageTitleEdit
}

func (p *TitleEditProcessor) Process(in Incoming, q domain.Question) (Action, error) {
	title := textFrom(in)
	if title == "" {
		return stay(domain.StageTitleEdit, Send{
			Text: "Отправь новый заголовок текстом",
		}), nil
	}

	if err := p.questions.SetTitle(in.ChatID, title); err != nil {
		return Action{}, err
	}

	q.Title = title
	return Action{
		Next: domain.StageFinal,
		Sends: []Send{
			{Text: q.Render()},
			{Text: "Заголовок исправлен, что дальше?", Keyboard: EditKeyboard()},
		},
	}, nil
}
