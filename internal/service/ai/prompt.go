package ai

import (
	"fmt"
	"strings"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
)

// withMoodContext prefixes the prompt with today's mood check-in as
// bracketed tags, the same shape the model was prompted with from day
// one. A nil entry leaves the prompt untouched.
func withMoodContext(prompt string, mood *chat.MoodEntry) string {
	if mood == nil {
		return prompt
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "[오늘의 기분: %d/10]\n", mood.Mood)
	if note := strings.TrimSpace(mood.Note); note != "" {
		fmt.Fprintf(&builder, "[메모: %s]\n", note)
	}
	builder.WriteString(prompt)
	return builder.String()
}
