package processor

import (
	"strings"

	"askbot/internal/domain"
)

// textFrom returns the trimmed free text of the message, empty when the
// update carried no usable text (e.g. a button press)
func textFrom(in Incoming) string {
	return strings.TrimSpace(in.Text)
}

// TitleProcessor collects the question title
type TitleProcessor struct {
	questions QuestionWriter
}

// NewTitleProcessor creates the TITLE stage processor
func NewTitleProcessor(questions QuestionWriter) *TitleProcessor {
	return &TitleProcessor{questions: questions}
}

func (p *TitleProcessor) OwnedStage() domain.Stage {
	return domain.StageTitle
}

func (p *TitleProcessor) Process(in Incoming, q domain.Question) (Action, error) {
	title := textFrom(in)
	if title == "" {
		return stay(domain.StageTitle, Send{
			Text: "Отправь заголовок вопроса текстом",
		}), nil
	}

	if err := p.questions.SetTitle(in.ChatID, title); err != nil {
		return Action{}, err
	}

	return Action{
		Next: domain.StageQuestion,
		Sends: []Send{{
			Text: "Теперь отправь текст вопроса.",
		}},
	}, nil
}
