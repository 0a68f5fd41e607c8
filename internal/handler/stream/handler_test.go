package stream

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/profile"
	chatService "github.com/tpgus72513/for-UnderDog-Revolution/internal/service/chat"
)

func newHandler(t *testing.T) (*Handler, *chatService.Service) {
	t.Helper()

	profiles := profile.NewMemoryStore(profile.Seed())
	chatSvc := chatService.NewService(profiles, 30)
	return New(nil, chatSvc, profiles), chatSvc
}

func TestGetSessionProfile(t *testing.T) {
	h, chatSvc := newHandler(t)
	ctx := context.Background()

	session, err := chatSvc.CreateSession(ctx, "mindset-coach", "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, prof, err := h.getSessionProfile(ctx, session.ID)
	if err != nil {
		t.Fatalf("getSessionProfile err: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("unexpected session: %s", got.ID)
	}
	if prof.ID != "mindset-coach" {
		t.Fatalf("unexpected profile: %s", prof.ID)
	}
}

func TestGetSessionProfileNotFound(t *testing.T) {
	h, _ := newHandler(t)

	if _, _, err := h.getSessionProfile(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestPrepareHistorySavesUserTurn(t *testing.T) {
	h, chatSvc := newHandler(t)
	ctx := context.Background()

	session, err := chatSvc.CreateSession(ctx, "mindset-coach", "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	history, err := h.prepareHistory(ctx, session.ID, "요즘 마음이 복잡해")
	if err != nil {
		t.Fatalf("prepareHistory err: %v", err)
	}
	// History covers turns before the new user message: just the greeting.
	if len(history) != 1 {
		t.Fatalf("expected 1 prior turn, got %d", len(history))
	}

	messages, err := chatSvc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("user turn should be persisted, got %d messages", len(messages))
	}
	last := messages[len(messages)-1]
	if last.Sender != "user" || last.Content != "요즘 마음이 복잡해" {
		t.Fatalf("unexpected persisted turn: %+v", last)
	}
}

func TestPrepareHistorySkipsDuplicateUserTurn(t *testing.T) {
	h, chatSvc := newHandler(t)
	ctx := context.Background()

	session, err := chatSvc.CreateSession(ctx, "mindset-coach", "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	// Client already pushed the turn over REST before opening the stream.
	if err := chatSvc.SaveMessage(ctx, chat.Message{SessionID: session.ID, Sender: "user", Content: "hello"}); err != nil {
		t.Fatalf("SaveMessage err: %v", err)
	}

	history, err := h.prepareHistory(ctx, session.ID, "hello")
	if err != nil {
		t.Fatalf("prepareHistory err: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("duplicate should be excluded from history, got %d turns", len(history))
	}

	messages, err := chatSvc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("duplicate must not be saved again, got %d messages", len(messages))
	}
}

func TestHasMatchingUserMessage(t *testing.T) {
	messages := []chat.Message{
		{SessionID: "s1", Sender: "assistant", Content: "hi"},
		{SessionID: "s1", Sender: "user", Content: "hello"},
	}

	if !hasMatchingUserMessage(messages, "s1", "hello") {
		t.Fatal("expected match on trailing user turn")
	}
	if hasMatchingUserMessage(messages, "s1", "other") {
		t.Fatal("different content must not match")
	}
	if hasMatchingUserMessage(messages, "s2", "hello") {
		t.Fatal("different session must not match")
	}
	if hasMatchingUserMessage(nil, "s1", "hello") {
		t.Fatal("empty history must not match")
	}
	if hasMatchingUserMessage(messages[:1], "s1", "hi") {
		t.Fatal("trailing assistant turn must not match")
	}
}

func TestHandleStreamRequestUnknownSession(t *testing.T) {
	h, _ := newHandler(t)
	recorder := httptest.NewRecorder()

	if err := h.HandleStreamRequest(context.Background(), recorder, "missing", "hello"); err == nil {
		t.Fatal("expected error for unknown session")
	}

	body := recorder.Body.String()
	if !strings.Contains(body, `"event":"error"`) {
		t.Fatalf("expected SSE error event, got %q", body)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}
}
