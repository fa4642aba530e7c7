package handlers

import (
	"net/http"

	"clicktoeat/internal/models"
	"clicktoeat/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := models.Await(h.Service.Login(r.Context(), creds))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	msg, err := models.Await(h.Service.Logout(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: msg})
}

func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	msg, err := models.Await(h.Service.Refresh(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: msg})
}

func (h *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := models.Await(h.Service.CurrentUser(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	input, err := accountInputFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := models.Await(h.Service.Register(r.Context(), input))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	input, err := accountInputFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := models.Await(h.Service.UpdateAccount(r.Context(), input))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := models.Await(h.Service.DeleteAccount(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "user " + id + " deleted"})
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := models.Await(h.Service.GetUsers(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := models.Await(h.Service.GetUser(r.Context(), getParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func accountInputFromRequest(r *http.Request) (models.AccountInput, error) {
	if err := parseForm(r); err != nil {
		return models.AccountInput{}, err
	}
	image, err := imageFromForm(r.MultipartForm, "image")
	if err != nil {
		return models.AccountInput{}, err
	}
	return models.AccountInput{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Image:    image,
	}, nil
}
