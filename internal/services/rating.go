package services

import "clicktoeat/internal/models"

// AverageRating is the arithmetic mean of the comment ratings, 0 when there
// are no comments.
func AverageRating(comments []models.Comment) float64 {
	if len(comments) == 0 {
		return 0
	}
	sum := 0
	for _, c := range comments {
		sum += c.Rating
	}
	return float64(sum) / float64(len(comments))
}

// TransformRestaurant builds the view aggregate of r. viewerID is the session
// user, empty when nobody is logged in.
func TransformRestaurant(r models.Restaurant, comments []models.Comment, favoritedBy []string, viewerID string) models.TransformedRestaurant {
	if comments == nil {
		comments = []models.Comment{}
	}
	if favoritedBy == nil {
		favoritedBy = []string{}
	}
	if r.Locations == nil {
		r.Locations = []models.Location{}
	}
	isFavorite := false
	if viewerID != "" {
		for _, id := range favoritedBy {
			if id == viewerID {
				isFavorite = true
				break
			}
		}
	}
	return models.TransformedRestaurant{
		Restaurant:              r,
		AverageRating:           AverageRating(comments),
		RatingCount:             len(comments),
		IsFavoriteByCurrentUser: isFavorite,
		FavoritedBy:             favoritedBy,
		Comments:                comments,
	}
}
