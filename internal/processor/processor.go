// Package processor implements one handler per conversation stage.
// A processor validates the incoming message, persists the accepted
// field and returns a deferred Action; it never talks to the chat
// transport itself, so the dispatcher controls execution ordering.
package processor

import "askbot/internal/domain"

// Incoming is the inbound message envelope handed over by the transport
type Incoming struct {
	ChatID   int64
	SenderID int64
	// Text is the free-text content, empty for non-text updates
	Text string
	// Callback is the payload of a pressed inline button, empty otherwise
	Callback string
}

// Button is a single inline keyboard button
type Button struct {
	Label string
	Data  string
}

// Send is one outbound message of a deferred action,
// targeted at the conversation
type Send struct {
	Text     string
	Keyboard [][]Button
}

// Action is the deferred result of processing one message: the sends to
// perform, the question to publish (FINAL stage only) and the stage the
// conversation moves to once the action has been executed.
type Action struct {
	Next    domain.Stage
	Sends   []Send
	Publish *domain.Question
}

// Processor handles messages arriving while the conversation
// is in its owned stage
type Processor interface {
	OwnedStage() domain.Stage
	Process(in Incoming, q domain.Question) (Action, error)
}

// stay builds the re-prompt action for invalid input: the conversation
// remains on the current stage and nothing is persisted
func stay(stage domain.Stage, sends ...Send) Action {
	return Action{Next: stage, Sends: sends}
}
