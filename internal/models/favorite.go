package models

// FavoriteStatus is the confirmed favorite state of a restaurant for the
// current user after a toggle.
type FavoriteStatus struct {
	RestaurantID string `json:"restaurantId"`
	IsFavorite   bool   `json:"isFavorite"`
	Count        int    `json:"count"`
}
