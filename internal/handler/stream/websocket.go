package stream

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// WebSocketHandler serves the chat over a WebSocket connection for
// clients that prefer a bidirectional channel over SSE.
type WebSocketHandler struct {
	stream   *Handler
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the WebSocket chat handler on top of the
// shared stream handler.
func NewWebSocketHandler(stream *Handler) *WebSocketHandler {
	return &WebSocketHandler{
		stream: stream,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the WebSocket route.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outboundFrame struct {
	Type      string `json:"type"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Tier      string `json:"tier,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] connection opened for session=%s", sessionID)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error for session=%s: %v", sessionID, err)
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.writeFrame(conn, outboundFrame{Type: "error", Error: "invalid frame"})
			continue
		}

		switch frame.Type {
		case "chat":
			h.handleChatFrame(r.Context(), conn, sessionID, frame.Text)
		case "ping":
			h.writeFrame(conn, outboundFrame{Type: "pong"})
		default:
			h.writeFrame(conn, outboundFrame{Type: "error", Error: "unknown frame type"})
		}
	}
}

func (h *WebSocketHandler) handleChatFrame(ctx context.Context, conn *websocket.Conn, sessionID, text string) {
	if text == "" {
		h.writeFrame(conn, outboundFrame{Type: "error", Error: "text is required"})
		return
	}

	session, prof, err := h.stream.getSessionProfile(ctx, sessionID)
	if err != nil {
		h.writeFrame(conn, outboundFrame{Type: "error", Error: err.Error()})
		return
	}

	history, err := h.stream.prepareHistory(ctx, session.ID, text)
	if err != nil {
		h.writeFrame(conn, outboundFrame{Type: "error", Error: err.Error()})
		return
	}

	h.writeFrame(conn, outboundFrame{Type: "start", SessionID: sessionID})

	reply := h.stream.generateReply(ctx, session, prof, history, text, func(delta string) {
		h.writeFrame(conn, outboundFrame{Type: "delta", SessionID: sessionID, Content: delta})
	})

	h.writeFrame(conn, outboundFrame{
		Type:      "message",
		SessionID: sessionID,
		Content:   reply.Text,
		Tier:      string(reply.Tier),
	})
}

func (h *WebSocketHandler) writeFrame(conn *websocket.Conn, frame outboundFrame) {
	if err := conn.WriteJSON(frame); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}
