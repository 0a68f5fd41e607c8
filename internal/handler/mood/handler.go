package mood

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/daily"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/chat"
	chatService "github.com/tpgus72513/for-UnderDog-Revolution/internal/service/chat"
	"github.com/tpgus72513/for-UnderDog-Revolution/pkg/utils"
)

// Handler records mood check-ins and exports the log as CSV.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the mood handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the mood routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/mood", h.handleSaveMood)
	r.Get("/mood/{sessionID}", h.handleMoodLog)
	r.Get("/mood/{sessionID}/export", h.handleExport)
}

func (h *Handler) handleSaveMood(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Mood      int    `json:"mood"`
		Note      string `json:"note"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry := chat.MoodEntry{
		Date: daily.DateString(daily.Today()),
		Mood: payload.Mood,
		Note: payload.Note,
	}

	if err := h.chatSvc.SaveMood(r.Context(), payload.SessionID, entry); err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleMoodLog(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	entries, err := h.chatSvc.MoodLog(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	entries, err := h.chatSvc.MoodLog(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Date, strconv.Itoa(entry.Mood), entry.Note})
	}

	utils.RespondCSV(w, "mood_record.csv", []string{"date", "mood", "note"}, rows)
}

func statusFor(err error) int {
	if errors.Is(err, chatService.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
