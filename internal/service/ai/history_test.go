package ai

import (
	"fmt"
	"testing"

	"google.golang.org/genai"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
)

func TestToProviderHistoryWindow(t *testing.T) {
	messages := make([]chat.Message, 0, 50)
	for i := 0; i < 50; i++ {
		sender := "user"
		if i%2 == 1 {
			sender = "assistant"
		}
		messages = append(messages, chat.Message{Sender: sender, Content: fmt.Sprintf("turn-%d", i)})
	}

	history := toProviderHistory(messages, 30)

	if len(history) != 30 {
		t.Fatalf("expected 30 turns, got %d", len(history))
	}
	if got := history[0].Parts[0].Text; got != "turn-20" {
		t.Fatalf("expected oldest surviving turn turn-20, got %q", got)
	}
	if got := history[29].Parts[0].Text; got != "turn-49" {
		t.Fatalf("expected newest turn turn-49, got %q", got)
	}
}

func TestToProviderHistoryEmpty(t *testing.T) {
	if got := toProviderHistory(nil, 30); len(got) != 0 {
		t.Fatalf("expected empty history, got %d", len(got))
	}
}

func TestToProviderHistoryRoleMapping(t *testing.T) {
	messages := []chat.Message{
		{Sender: "user", Content: "hi"},
		{Sender: "assistant", Content: "hello"},
		// Any sender that is not exactly "user" becomes the model role;
		// this catch-all is intentional.
		{Sender: "system", Content: "sys"},
		{Sender: "", Content: "blank"},
	}

	history := toProviderHistory(messages, 30)

	wantRoles := []genai.Role{genai.RoleUser, genai.RoleModel, genai.RoleModel, genai.RoleModel}
	for i, want := range wantRoles {
		if genai.Role(history[i].Role) != want {
			t.Fatalf("turn %d: expected role %q, got %q", i, want, history[i].Role)
		}
	}
}

func TestToProviderHistoryPreservesContent(t *testing.T) {
	messages := []chat.Message{{Sender: "user", Content: "오늘 공부 계획 세워줘"}}

	history := toProviderHistory(messages, 30)

	if len(history) != 1 || len(history[0].Parts) != 1 {
		t.Fatalf("expected one turn with one part, got %+v", history)
	}
	if history[0].Parts[0].Text != messages[0].Content {
		t.Fatalf("content changed through adaptation: %q", history[0].Parts[0].Text)
	}
}
