package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain token",
			input:    "edit_topic",
			expected: "edit_topic",
		},
		{
			name:     "topic name",
			input:    "Наука",
			expected: "Наука",
		},
		{
			name:     "surrounding whitespace",
			input:    "  confirm  ",
			expected: "confirm",
		},
		{
			name:     "telebot form-feed prefix",
			input:    "\fconfirm",
			expected: "confirm",
		},
		{
			name:     "embedded control characters",
			input:    "edit\x00_title\x01",
			expected: "edit_title",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}
