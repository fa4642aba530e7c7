package models

import (
	"time"
)

type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Locations   []Location `json:"locations"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// TransformedRestaurant is the view-ready aggregate of a restaurant, its comments
// and the users that favorited it. It is recomputed on every fetch.
type TransformedRestaurant struct {
	Restaurant
	AverageRating           float64   `json:"averageRating"`
	RatingCount             int       `json:"ratingCount"`
	IsFavoriteByCurrentUser bool      `json:"isFavoriteByCurrentUser"`
	FavoritedBy             []string  `json:"favoritedBy"`
	Comments                []Comment `json:"comments"`
}
