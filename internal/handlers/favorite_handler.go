package handlers

import (
	"net/http"

	"clicktoeat/internal/models"
	"clicktoeat/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	status, err := models.Await(h.Service.Toggle(r.Context(), getParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *FavoriteHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	restaurants, err := models.Await(h.Service.GetFavoritesOfUser(r.Context(), getParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}
