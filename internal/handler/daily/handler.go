package daily

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/daily"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/affirmation"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/vocab"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/service/quiz"
	"github.com/tpgus72513/for-UnderDog-Revolution/pkg/utils"
)

// Handler serves the date-keyed content: affirmations, vocabulary and
// quizzes. An optional ?date=YYYY-MM-DD overrides "today" (KST), which
// also keeps the endpoints reproducible.
type Handler struct {
	bank      []vocab.Entry
	wordCount int
}

// New creates the daily-content handler.
func New(bank []vocab.Entry, wordCount int) *Handler {
	return &Handler{bank: bank, wordCount: wordCount}
}

// RegisterRoutes mounts the daily-content routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/daily/affirmations", h.handleAffirmations)
	r.Get("/daily/words", h.handleWords)
	r.Get("/daily/words/export", h.handleWordsExport)
	r.Get("/daily/quiz", h.handleQuiz)
}

func (h *Handler) handleAffirmations(w http.ResponseWriter, r *http.Request) {
	t, ok := requestDate(r)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	name := r.URL.Query().Get("name")
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"date":    daily.DateString(t),
		"morning": daily.IsMorning(t),
		"lines":   affirmation.Lines(t, name),
	})
}

func (h *Handler) handleWords(w http.ResponseWriter, r *http.Request) {
	t, ok := requestDate(r)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"date":  daily.DateString(t),
		"words": daily.Pick(h.bank, t, h.wordCount),
	})
}

func (h *Handler) handleWordsExport(w http.ResponseWriter, r *http.Request) {
	t, ok := requestDate(r)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	words := daily.Pick(h.bank, t, h.wordCount)
	rows := make([][]string, 0, len(words))
	for _, word := range words {
		rows = append(rows, []string{word.Word, word.POS, word.Meaning, word.Example, word.ExampleKR})
	}

	utils.RespondCSV(w, "toeic_words_today.csv", []string{"word", "pos", "kr", "ex", "ex_kr"}, rows)
}

func (h *Handler) handleQuiz(w http.ResponseWriter, r *http.Request) {
	t, ok := requestDate(r)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	words := daily.Pick(h.bank, t, h.wordCount)
	utils.RespondJSON(w, http.StatusOK, quiz.BuildDaily(words, t))
}

// requestDate resolves the effective date for the request, defaulting to
// today in KST.
func requestDate(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return daily.Today(), true
	}

	t, err := time.ParseInLocation("2006-01-02", raw, daily.KST)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
