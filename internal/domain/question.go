package domain

import (
	"fmt"
	"strings"
)

// Question is the submission being assembled for a single conversation.
// Empty string means the field is not set yet.
type Question struct {
	ChatID int64
	Topic  Topic
	Title  string
	Body   string
}

// Complete reports whether all three fields are filled in.
// The dispatcher guarantees this holds before publication.
func (q Question) Complete() bool {
	return q.Topic != "" && q.Title != "" && q.Body != ""
}

// Render formats the question for echoing back to the user
// and for publication to the topic channels
func (q Question) Render() string {
	var b strings.Builder
	if q.Title != "" {
		b.WriteString(q.Title)
		b.WriteString("\n\n")
	}
	if q.Body != "" {
		b.WriteString(q.Body)
		b.WriteString("\n\n")
	}
	if q.Topic != "" {
		fmt.Fprintf(&b, "#%s", q.Topic)
	}
	return strings.TrimRight(b.String(), "\n")
}
