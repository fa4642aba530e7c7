// Package repositories declares the data sources the use-cases depend on.
// The remote package implements them against the REST API and the memory
// package implements them in process.
package repositories

import (
	"context"

	"clicktoeat/internal/models"
)

type RestaurantRepository interface {
	GetRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (models.Restaurant, error)
	CreateRestaurant(ctx context.Context, token string, input models.RestaurantInput) (string, error)
	UpdateRestaurant(ctx context.Context, token, id string, input models.RestaurantInput) error
	DeleteRestaurant(ctx context.Context, token, id string) error
}

type CommentRepository interface {
	GetCommentsByRestaurant(ctx context.Context, restaurantID string) ([]models.Comment, error)
	GetCommentsByUser(ctx context.Context, userID string) ([]models.Comment, error)
	GetComment(ctx context.Context, id string) (models.Comment, error)
	CreateComment(ctx context.Context, token, restaurantID string, input models.CommentInput) (string, error)
	UpdateComment(ctx context.Context, token, id string, input models.CommentInput) error
	DeleteComment(ctx context.Context, token, id string) error
}

type FavoriteRepository interface {
	GetFavoritesOfUser(ctx context.Context, userID string) ([]models.Restaurant, error)
	GetUsersWhoFavorited(ctx context.Context, restaurantID string) ([]models.User, error)
	AddFavorite(ctx context.Context, token, restaurantID string) error
	RemoveFavorite(ctx context.Context, token, restaurantID string) error
}

// ReactionRepository is implemented once for likes and once for dislikes.
type ReactionRepository interface {
	GetReactors(ctx context.Context, commentID string) ([]models.User, error)
	React(ctx context.Context, token, commentID string) error
	Unreact(ctx context.Context, token, commentID string) error
}

type UserRepository interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Logout(ctx context.Context, token string) error
	Refresh(ctx context.Context, token string) (string, error)
	Authenticate(ctx context.Context, token string) (models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	Register(ctx context.Context, input models.AccountInput) (string, error)
	UpdateAccount(ctx context.Context, token string, input models.AccountInput) error
	DeleteAccount(ctx context.Context, token string) error
}

// TokenRepository owns the bearer token of the single active session.
type TokenRepository interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	// ClearIf clears the session only while it still holds token.
	ClearIf(ctx context.Context, token string) error
}

// Invalidator is implemented by repositories with a cache layer.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}
