package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/profile"
	"github.com/tpgus72513/for-UnderDog-Revolution/pkg/utils"
)

// Handler serves the coach profile catalog.
type Handler struct {
	profiles profile.Store
}

// New creates the profile handler.
func New(profiles profile.Store) *Handler {
	return &Handler{profiles: profiles}
}

// RegisterRoutes mounts the profile routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/profiles", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.profiles.List())
}
