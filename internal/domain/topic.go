package domain

import "fmt"

// Topic is one of the fixed subject categories a question is filed under
type Topic string

const (
	TopicScience    Topic = "Наука"
	TopicTechnology Topic = "Техника"
	TopicHistory    Topic = "История"
	TopicCulture    Topic = "Культура"
	TopicSport      Topic = "Спорт"
	TopicOther      Topic = "Разное"
)

// allTopics keeps the keyboard ordering stable
var allTopics = []Topic{
	TopicScience,
	TopicTechnology,
	TopicHistory,
	TopicCulture,
	TopicSport,
	TopicOther,
}

// Topics returns all topics in display order
func Topics() []Topic {
	out := make([]Topic, len(allTopics))
	copy(out, allTopics)
	return out
}

// TopicByName looks up a topic by its display name (exact match)
func TopicByName(name string) (Topic, bool) {
	for _, t := range allTopics {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// MustTopicByName is the strict lookup variant used for configuration,
// where an unknown name is an error rather than an absent value
func MustTopicByName(name string) (Topic, error) {
	t, ok := TopicByName(name)
	if !ok {
		return "", fmt.Errorf("unknown topic %q", name)
	}
	return t, nil
}
