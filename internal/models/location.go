package models

// Location is one branch of a restaurant.
type Location struct {
	ID        string  `json:"id,omitempty"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
