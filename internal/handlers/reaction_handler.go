package handlers

import (
	"net/http"

	"clicktoeat/internal/models"
	"clicktoeat/internal/services"
)

type ReactionHandler struct {
	Service *services.ReactionService
}

func (h *ReactionHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, models.ActionLike)
}

func (h *ReactionHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, models.ActionDislike)
}

func (h *ReactionHandler) toggle(w http.ResponseWriter, r *http.Request, action models.ReactionAction) {
	comment, err := models.Await(h.Service.Toggle(r.Context(), getParam(r, "id"), action))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}
