package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/tpgus72513/for-UnderDog-Revolution/internal/handler/chat"
	dailyHandler "github.com/tpgus72513/for-UnderDog-Revolution/internal/handler/daily"
	moodHandler "github.com/tpgus72513/for-UnderDog-Revolution/internal/handler/mood"
	profileHandler "github.com/tpgus72513/for-UnderDog-Revolution/internal/handler/profile"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/handler/stream"
	middlewarePkg "github.com/tpgus72513/for-UnderDog-Revolution/internal/middleware"
	profileModel "github.com/tpgus72513/for-UnderDog-Revolution/internal/model/profile"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/vocab"
	aiService "github.com/tpgus72513/for-UnderDog-Revolution/internal/service/ai"
	chatService "github.com/tpgus72513/for-UnderDog-Revolution/internal/service/chat"
	"github.com/tpgus72513/for-UnderDog-Revolution/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(profiles profileModel.Store, chatSvc *chatService.Service, aiSvc *aiService.Service, wordCount int) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	profileH := profileHandler.New(profiles)
	chatH := chatHandler.New(chatSvc)
	dailyH := dailyHandler.New(vocab.Bank(), wordCount)
	moodH := moodHandler.New(chatSvc)

	// Reply streaming only exists when the model credential is present.
	var streamHandler *stream.Handler
	if aiSvc != nil {
		streamHandler = stream.New(aiSvc, chatSvc, profiles)
	}

	r.Route("/api", func(api chi.Router) {
		profileH.RegisterRoutes(api)
		chatH.RegisterRoutes(api)
		dailyH.RegisterRoutes(api)
		moodH.RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			userMessage := r.URL.Query().Get("message")

			if streamHandler == nil {
				// No model credential: keep the stream open with heartbeats
				// so the client UI stays alive.
				handleHeartbeatStream(w, r, sessionID)
				return
			}
			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})

		if streamHandler != nil {
			stream.NewWebSocketHandler(streamHandler).RegisterRoutes(api)
		}
	})

	return r
}

// handleHeartbeatStream keeps an SSE stream alive when no reply can be
// generated, so the frontend does not tear down its event source.
func handleHeartbeatStream(w http.ResponseWriter, r *http.Request, sessionID string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)

	ctx := r.Context()
	log.Printf("[sse] opening heartbeat stream for session=%s", sessionID)

	ticker := time.NewTicker(8 * time.Second)
	defer ticker.Stop()

	utils.SendSSEChunk(w, flusher, map[string]any{
		"event":   "status",
		"message": "reply generation unavailable",
	})

	for {
		select {
		case <-ctx.Done():
			log.Printf("[sse] closing heartbeat stream for session=%s", sessionID)
			return
		case t := <-ticker.C:
			utils.SendSSEChunk(w, flusher, map[string]any{
				"event":   "heartbeat",
				"message": "awaiting model credential",
				"time":    t.UTC().Format(time.RFC3339),
			})
		}
	}
}
