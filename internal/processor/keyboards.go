package processor

import "askbot/internal/domain"

// Edit-menu callback tokens
const (
	CallbackEditTopic    = "edit_topic"
	CallbackEditTitle    = "edit_title"
	CallbackEditQuestion = "edit_question"
	CallbackConfirm      = "confirm"
)

// TopicKeyboard returns the topic selection keyboard, two topics per row.
// Each button carries the topic display name as its callback payload.
func TopicKeyboard() [][]Button {
	topics := domain.Topics()

	var rows [][]Button
	for i := 0; i < len(topics); i += 2 {
		row := []Button{{Label: string(topics[i]), Data: string(topics[i])}}
		if i+1 < len(topics) {
			row = append(row, Button{Label: string(topics[i+1]), Data: string(topics[i+1])})
		}
		rows = append(rows, row)
	}
	return rows
}

// EditKeyboard returns the edit menu shown before submission
func EditKeyboard() [][]Button {
	return [][]Button{
		{{Label: "Исправить тему", Data: CallbackEditTopic}},
		{{Label: "Исправить заголовок", Data: CallbackEditTitle}},
		{{Label: "Исправить вопрос", Data: CallbackEditQuestion}},
		{{Label: "Отправить", Data: CallbackConfirm}},
	}
}
