package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/daily"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/profile"
	aiService "github.com/tpgus72513/for-UnderDog-Revolution/internal/service/ai"
	chatService "github.com/tpgus72513/for-UnderDog-Revolution/internal/service/chat"
)

// Handler manages streaming AI replies via Server-Sent Events.
type Handler struct {
	aiService *aiService.Service
	chatSvc   *chatService.Service
	profiles  profile.Store
}

// New creates a new stream handler.
func New(aiSvc *aiService.Service, chatSvc *chatService.Service, profiles profile.Store) *Handler {
	return &Handler{
		aiService: aiSvc,
		chatSvc:   chatSvc,
		profiles:  profiles,
	}
}

// StreamResponse represents one SSE event payload.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Tier      string `json:"tier,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStreamRequest generates one reply for the session, surfacing
// increments as SSE delta events and persisting the final turn.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID string, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	session, prof, err := h.getSessionProfile(ctx, sessionID)
	if err != nil {
		h.sendSSEError(w, flusher, fmt.Sprintf("failed to resolve session: %v", err))
		return err
	}

	history, err := h.prepareHistory(ctx, session.ID, userMessage)
	if err != nil {
		h.sendSSEError(w, flusher, fmt.Sprintf("failed to load conversation: %v", err))
		return err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "start",
		SessionID: sessionID,
		Content:   fmt.Sprintf("%s의 답변:", prof.Name),
	})

	reply := h.generateReply(ctx, session, prof, history, userMessage, func(delta string) {
		h.sendSSE(w, flusher, StreamResponse{
			Event:     "delta",
			SessionID: sessionID,
			Content:   delta,
		})
	})

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: sessionID,
		Content:   reply.Text,
		Tier:      string(reply.Tier),
	})

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: sessionID,
		Finished:  true,
	})

	log.Printf("[stream] completed reply for session=%s, profile=%s, tier=%s", sessionID, prof.ID, reply.Tier)
	return nil
}

// generateReply runs the orchestrator with today's mood context and
// persists the resulting assistant turn. Failed replies are stored too,
// so the transcript mirrors exactly what the user saw.
func (h *Handler) generateReply(ctx context.Context, session *chat.Session, prof *profile.Profile, history []chat.Message, userMessage string, emit func(string)) aiService.Reply {
	var mood *chat.MoodEntry
	if entry, ok := h.chatSvc.MoodOn(ctx, session.ID, daily.DateString(daily.Today())); ok {
		mood = &entry
	}

	reply := h.aiService.Reply(ctx, prof, history, userMessage, mood, emit)
	if reply.Err != nil {
		log.Printf("[stream] degraded reply for session=%s: tier=%s cause=%v", session.ID, reply.Tier, reply.Err)
	}

	assistantMsg := chat.Message{
		SessionID: session.ID,
		Sender:    "assistant",
		Content:   reply.Text,
	}
	if err := h.chatSvc.SaveMessage(ctx, assistantMsg); err != nil {
		log.Printf("[stream] failed to save assistant message: %v", err)
	}

	return reply
}

// prepareHistory returns the conversation as it stood before the new
// user turn and persists that turn. When the client already saved the
// message via REST, it is not duplicated.
func (h *Handler) prepareHistory(ctx context.Context, sessionID, userMessage string) ([]chat.Message, error) {
	messages, err := h.chatSvc.LoadTranscript(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if hasMatchingUserMessage(messages, sessionID, userMessage) {
		return messages[:len(messages)-1], nil
	}

	userMsg := chat.Message{
		SessionID: sessionID,
		Sender:    "user",
		Content:   userMessage,
	}
	if err := h.chatSvc.SaveMessage(ctx, userMsg); err != nil {
		log.Printf("[stream] failed to save user message: %v", err)
	}
	return messages, nil
}

// getSessionProfile retrieves the session and its bound coach profile.
func (h *Handler) getSessionProfile(ctx context.Context, sessionID string) (*chat.Session, *profile.Profile, error) {
	session, err := h.chatSvc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("session not found: %w", err)
	}

	prof, ok := h.profiles.FindByID(session.ProfileID)
	if !ok {
		return nil, nil, fmt.Errorf("profile %s not found", session.ProfileID)
	}

	return &session, &prof, nil
}

func hasMatchingUserMessage(messages []chat.Message, sessionID, content string) bool {
	if len(messages) == 0 {
		return false
	}

	last := messages[len(messages)-1]
	if last.SessionID != sessionID {
		return false
	}

	if last.Sender != "user" {
		return false
	}

	return last.Content == content
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		log.Printf("failed to marshal SSE response: %v", err)
		return
	}

	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{
		Event: "error",
		Error: errorMsg,
	})
}
