package remote

import "clicktoeat/internal/repositories"

var (
	_ repositories.RestaurantRepository = (*RestaurantRemote)(nil)
	_ repositories.CommentRepository    = (*CommentRemote)(nil)
	_ repositories.FavoriteRepository   = (*FavoriteRemote)(nil)
	_ repositories.ReactionRepository   = (*ReactionRemote)(nil)
	_ repositories.UserRepository       = (*UserRemote)(nil)
)
