package remote

import (
	"context"
	"net/http"

	"clicktoeat/internal/models"
)

// CommentRemote implements repositories.CommentRepository.
type CommentRemote struct {
	client *Client
}

func NewCommentRemote(client *Client) *CommentRemote {
	return &CommentRemote{client: client}
}

func (r *CommentRemote) GetCommentsByRestaurant(ctx context.Context, restaurantID string) ([]models.Comment, error) {
	return do[[]models.Comment](ctx, r.client, call{
		operation: "comments.by_restaurant",
		method:    http.MethodGet,
		path:      pathf("/api/comments/restaurant/%s", restaurantID),
	})
}

func (r *CommentRemote) GetCommentsByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	return do[[]models.Comment](ctx, r.client, call{
		operation: "comments.by_user",
		method:    http.MethodGet,
		path:      pathf("/api/comments/user/%s", userID),
	})
}

func (r *CommentRemote) GetComment(ctx context.Context, id string) (models.Comment, error) {
	return do[models.Comment](ctx, r.client, call{
		operation: "comments.get",
		method:    http.MethodGet,
		path:      pathf("/api/comments/%s", id),
	})
}

func (r *CommentRemote) CreateComment(ctx context.Context, token, restaurantID string, input models.CommentInput) (string, error) {
	resp, err := do[models.InsertResponse](ctx, r.client, call{
		operation: "comments.create",
		method:    http.MethodPost,
		path:      pathf("/api/comments/restaurant/%s", restaurantID),
		token:     token,
		body:      input,
	})
	return resp.InsertID, err
}

func (r *CommentRemote) UpdateComment(ctx context.Context, token, id string, input models.CommentInput) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: "comments.update",
		method:    http.MethodPut,
		path:      pathf("/api/comments/%s", id),
		token:     token,
		body:      input,
	})
	return err
}

func (r *CommentRemote) DeleteComment(ctx context.Context, token, id string) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: "comments.delete",
		method:    http.MethodDelete,
		path:      pathf("/api/comments/%s", id),
		token:     token,
	})
	return err
}
