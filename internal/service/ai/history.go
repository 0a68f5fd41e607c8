package ai

import (
	"google.golang.org/genai"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
)

// toProviderHistory converts the internal message list into the model
// API's turn shape, keeping at most the last maxWindow turns (oldest
// discarded first). The sender "user" maps to the user role; every other
// sender, including unknown ones, maps to the model role; that
// catch-all is long-standing behavior and is kept as-is.
func toProviderHistory(messages []chat.Message, maxWindow int) []*genai.Content {
	if maxWindow < 0 {
		maxWindow = 0
	}

	start := 0
	if len(messages) > maxWindow {
		start = len(messages) - maxWindow
	}

	history := make([]*genai.Content, 0, len(messages)-start)
	for _, msg := range messages[start:] {
		var role genai.Role = genai.RoleModel
		if msg.Sender == "user" {
			role = genai.RoleUser
		}
		history = append(history, genai.NewContentFromText(msg.Content, role))
	}
	return history
}
