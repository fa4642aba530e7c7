package models

import (
	"time"
)

type Comment struct {
	ID           string     `json:"id"`
	Review       string     `json:"review"`
	Rating       int        `json:"rating"`
	User         User       `json:"user"`
	RestaurantID string     `json:"restaurantId"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`

	// Filled by enrichment, never sent by the backend on the comment itself.
	Likes    []string `json:"likes"`
	Dislikes []string `json:"dislikes"`
}

// HasLike reports whether userID likes the comment.
func (c Comment) HasLike(userID string) bool {
	return containsID(c.Likes, userID)
}

// HasDislike reports whether userID dislikes the comment.
func (c Comment) HasDislike(userID string) bool {
	return containsID(c.Dislikes, userID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
