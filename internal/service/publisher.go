package service

import (
	"fmt"

	"askbot/internal/domain"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// ChannelTransport sends a text message to a channel by its identifier
type ChannelTransport interface {
	SendTo(channelID string, text string) error
}

// Publisher fans a finished question out to the channels
// configured for its topic
type Publisher struct {
	channels  *ChannelMap
	transport ChannelTransport
	logger    *zap.Logger
}

// NewPublisher creates a new publisher
func NewPublisher(channels *ChannelMap, transport ChannelTransport, logger *zap.Logger) *Publisher {
	return &Publisher{
		channels:  channels,
		transport: transport,
		logger:    logger,
	}
}

// Publish sends the question to every channel mapped to its topic.
// Destinations are independent: a failed send is recorded and the
// remaining channels are still attempted. The combined error reports
// every failure; nothing is retried.
func (p *Publisher) Publish(q domain.Question) error {
	ids, ok := p.channels.Destinations(q.Topic)
	if !ok {
		return fmt.Errorf("no channels configured for topic %q", q.Topic)
	}

	text := q.Render()

	var result *multierror.Error
	for _, id := range ids {
		if err := p.transport.SendTo(id, text); err != nil {
			p.logger.Error("Failed to publish question to channel",
				zap.String("channel_id", id),
				zap.String("topic", string(q.Topic)),
				zap.Error(err),
			)
			result = multierror.Append(result, fmt.Errorf("channel %s: %w", id, err))
		}
	}

	return result.ErrorOrNil()
}
