package service

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"askbot/internal/domain"
)

// ChannelMap maps each topic to the channels its questions are published to.
// Loaded once at startup and never mutated.
type ChannelMap struct {
	channels map[domain.Topic][]string
}

// ParseChannelMap reads a line-oriented mapping, each line
// "<topicName>;<id1>,<id2>,...". An unknown topic name is a
// configuration error and fails startup.
func ParseChannelMap(r io.Reader) (*ChannelMap, error) {
	channels := make(map[domain.Topic][]string)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		name, rest, found := strings.Cut(text, ";")
		if !found {
			return nil, fmt.Errorf("channel map line %d: expected \"topic;ids\", got %q", line, text)
		}

		topic, err := domain.MustTopicByName(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("channel map line %d: %w", line, err)
		}

		var ids []string
		for _, id := range strings.Split(rest, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("channel map line %d: topic %q has no channels", line, name)
		}

		channels[topic] = ids
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading channel map: %w", err)
	}

	return &ChannelMap{channels: channels}, nil
}

// Destinations returns the configured channels for a topic
func (m *ChannelMap) Destinations(topic domain.Topic) ([]string, bool) {
	ids, ok := m.channels[topic]
	return ids, ok
}

// Len returns the number of mapped topics, for startup logging
func (m *ChannelMap) Len() int {
	return len(m.channels)
}
