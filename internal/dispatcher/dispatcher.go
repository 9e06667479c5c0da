// Package dispatcher drives the submission state machine: it routes each
// inbound message to the processor owning the conversation's current
// stage and is the only place where stage transitions are persisted.
package dispatcher

import (
	"fmt"

	"askbot/internal/domain"
	"askbot/internal/processor"
	"askbot/internal/repository"
	"askbot/internal/service"

	"go.uber.org/zap"
)

// Transport delivers a message to a conversation
type Transport interface {
	Send(chatID int64, text string, keyboard [][]processor.Button) error
}

// Publisher fans a finished question out to its topic channels
type Publisher interface {
	Publish(q domain.Question) error
}

// Dispatcher routes inbound messages through the stage processors
type Dispatcher struct {
	processors map[domain.Stage]processor.Processor
	stages     repository.StageRepository
	questions  repository.QuestionRepository
	bans       *service.BanList
	publisher  Publisher
	transport  Transport
	logger     *zap.Logger

	locks *chatLocks
}

// New creates a dispatcher with the given processors registered.
// Every processor must own a distinct stage; a duplicate is a
// configuration error.
func New(
	processors []processor.Processor,
	stages repository.StageRepository,
	questions repository.QuestionRepository,
	bans *service.BanList,
	publisher Publisher,
	transport Transport,
	logger *zap.Logger,
) (*Dispatcher, error) {
	byStage := make(map[domain.Stage]processor.Processor, len(processors))
	for _, p := range processors {
		stage := p.OwnedStage()
		if _, exists := byStage[stage]; exists {
			return nil, fmt.Errorf("duplicate processor for stage %s", stage)
		}
		byStage[stage] = p
	}

	return &Dispatcher{
		processors: byStage,
		stages:     stages,
		questions:  questions,
		bans:       bans,
		publisher:  publisher,
		transport:  transport,
		logger:     logger,
		locks:      newChatLocks(),
	}, nil
}

// Dispatch processes a single inbound message to completion.
// Banned senders are dropped silently: no response, no state change.
func (d *Dispatcher) Dispatch(in processor.Incoming) error {
	if d.bans.IsBanned(in.SenderID) {
		return nil
	}

	l := d.locks.lock(in.ChatID)
	defer l.Unlock()

	stage, err := d.stages.GetStage(in.ChatID)
	if err != nil {
		return fmt.Errorf("reading stage: %w", err)
	}

	proc, ok := d.processors[stage]
	if !ok {
		return fmt.Errorf("no processor registered for stage %s", stage)
	}

	q, err := d.questions.GetQuestion(in.ChatID)
	if err != nil {
		return fmt.Errorf("reading question: %w", err)
	}

	act, err := proc.Process(in, q)
	if err != nil {
		return fmt.Errorf("stage %s: %w", stage, err)
	}

	if act.Publish != nil {
		// Fan-out is best-effort; partial failure must not block the
		// reset, operators see it in the log
		if err := d.publisher.Publish(*act.Publish); err != nil {
			d.logger.Error("Failed to publish question",
				zap.Int64("chat_id", in.ChatID),
				zap.String("topic", string(act.Publish.Topic)),
				zap.Error(err),
			)
		}
	}

	for _, s := range act.Sends {
		if err := d.transport.Send(in.ChatID, s.Text, s.Keyboard); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
	}

	if err := d.stages.SetStage(in.ChatID, act.Next); err != nil {
		return fmt.Errorf("writing stage: %w", err)
	}

	// A completed cycle resets to NONE; drop the stored question so a
	// later submission cannot pick up stale fields
	if stage == domain.StageFinal && act.Next == domain.StageNone {
		if err := d.questions.Clear(in.ChatID); err != nil {
			return fmt.Errorf("clearing question: %w", err)
		}
	}

	return nil
}
