package handlers

import (
	"net/http"

	"clicktoeat/internal/models"
	"clicktoeat/internal/services"
)

type CommentHandler struct {
	Service *services.CommentService
}

func (h *CommentHandler) GetRestaurantComments(w http.ResponseWriter, r *http.Request) {
	comments, err := models.Await(h.Service.GetRestaurantComments(r.Context(), getParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) GetUserComments(w http.ResponseWriter, r *http.Request) {
	comments, err := models.Await(h.Service.GetUserComments(r.Context(), getParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var input models.CommentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	comment, err := models.Await(h.Service.CreateComment(r.Context(), getParam(r, "id"), input))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	var input models.CommentInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	comment, err := models.Await(h.Service.EditComment(r.Context(), getParam(r, "id"), input))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := models.Await(h.Service.DeleteComment(r.Context(), getParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "comment " + id + " deleted"})
}
