package remote

import (
	"context"
	"net/http"

	"clicktoeat/internal/models"
)

// ReactionRemote implements repositories.ReactionRepository for one
// reaction kind. The backend exposes likes and dislikes under identical
// routes with different prefixes.
type ReactionRemote struct {
	client *Client
	prefix string
	kind   string
}

func NewLikeRemote(client *Client) *ReactionRemote {
	return &ReactionRemote{client: client, prefix: "/api/likes", kind: "likes"}
}

func NewDislikeRemote(client *Client) *ReactionRemote {
	return &ReactionRemote{client: client, prefix: "/api/dislikes", kind: "dislikes"}
}

func (r *ReactionRemote) GetReactors(ctx context.Context, commentID string) ([]models.User, error) {
	return do[[]models.User](ctx, r.client, call{
		operation: r.kind + ".list",
		method:    http.MethodGet,
		path:      r.prefix + pathf("/comment/%s", commentID),
	})
}

func (r *ReactionRemote) React(ctx context.Context, token, commentID string) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: r.kind + ".create",
		method:    http.MethodPost,
		path:      r.prefix + pathf("/comment/%s", commentID),
		token:     token,
	})
	return err
}

func (r *ReactionRemote) Unreact(ctx context.Context, token, commentID string) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: r.kind + ".delete",
		method:    http.MethodDelete,
		path:      r.prefix + pathf("/comment/%s", commentID),
		token:     token,
	})
	return err
}
