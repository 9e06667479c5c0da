package domain

// Stage is the current step of the guided submission state machine
type Stage string

const (
	StageNone         Stage = "NONE"
	StageTopic        Stage = "TOPIC"
	StageTopicEdit    Stage = "TOPIC_EDIT"
	StageTitle        Stage = "TITLE"
	StageTitleEdit    Stage = "TITLE_EDIT"
	StageQuestion     Stage = "QUESTION"
	StageQuestionEdit Stage = "QUESTION_EDIT"
	StageFinal        Stage = "FINAL"
)

var allStages = map[Stage]struct{}{
	StageNone:         {},
	StageTopic:        {},
	StageTopicEdit:    {},
	StageTitle:        {},
	StageTitleEdit:    {},
	StageQuestion:     {},
	StageQuestionEdit: {},
	StageFinal:        {},
}

// Valid reports whether s is one of the known stages
func (s Stage) Valid() bool {
	_, ok := allStages[s]
	return ok
}

// ParseStage maps a stored value to a Stage.
// Unknown or empty values read as StageNone, so a conversation
// with no stored stage starts from the beginning.
func ParseStage(raw string) Stage {
	s := Stage(raw)
	if !s.Valid() {
		return StageNone
	}
	return s
}
