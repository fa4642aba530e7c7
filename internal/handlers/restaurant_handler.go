package handlers

import (
	"net/http"

	"clicktoeat/internal/models"
	"clicktoeat/internal/services"
)

type RestaurantHandler struct {
	Service *services.RestaurantService
}

func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	q := services.RestaurantQuery{
		FavoritesOf: getParam(r, "favorites_of"),
		Refresh:     boolParam(r, "refresh"),
	}
	restaurants, err := models.Await(h.Service.GetRestaurants(r.Context(), q))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := models.Await(h.Service.GetRestaurant(r.Context(), getParam(r, "id"), boolParam(r, "refresh")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *RestaurantHandler) GetFavoriteRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := models.Await(h.Service.GetFavoriteRestaurants(r.Context(), boolParam(r, "refresh")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	input, err := restaurantInputFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	restaurant, err := models.Await(h.Service.CreateRestaurant(r.Context(), input))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	input, err := restaurantInputFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	restaurant, err := models.Await(h.Service.UpdateRestaurant(r.Context(), getParam(r, "id"), input))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := models.Await(h.Service.DeleteRestaurant(r.Context(), getParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "restaurant " + id + " deleted"})
}

func restaurantInputFromRequest(r *http.Request) (models.RestaurantInput, error) {
	if err := parseForm(r); err != nil {
		return models.RestaurantInput{}, err
	}
	locations, err := locationsFromValues(r.Form["locations"])
	if err != nil {
		return models.RestaurantInput{}, err
	}
	image, err := imageFromForm(r.MultipartForm, "image")
	if err != nil {
		return models.RestaurantInput{}, err
	}
	return models.RestaurantInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Locations:   locations,
		Image:       image,
	}, nil
}
