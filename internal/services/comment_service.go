package services

import (
	"context"

	"github.com/rs/zerolog"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
)

type CommentService struct {
	Comments repositories.CommentRepository
	Likes    repositories.ReactionRepository
	Dislikes repositories.ReactionRepository
	Tokens   repositories.TokenRepository
	Logger   zerolog.Logger
	// Concurrency caps the comments enriched at once. Zero is unbounded.
	Concurrency int
}

// CreateComment posts a review and returns it as stored by the backend.
func (s *CommentService) CreateComment(ctx context.Context, restaurantID string, input models.CommentInput) <-chan models.Resource[models.Comment] {
	if errs := ValidateComment(input); len(errs) > 0 {
		return failNow[models.Comment](errs)
	}
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[models.Comment](err)
	}
	return run(ctx, func(ctx context.Context) (models.Comment, error) {
		id, err := s.Comments.CreateComment(ctx, token, restaurantID, input)
		if err != nil {
			return models.Comment{}, err
		}
		comment, err := s.Comments.GetComment(ctx, id)
		if err != nil {
			return models.Comment{}, err
		}
		comment.Likes = []string{}
		comment.Dislikes = []string{}
		s.Logger.Info().Str("comment_id", id).Str("restaurant_id", restaurantID).Msg("comment created")
		return comment, nil
	})
}

func (s *CommentService) EditComment(ctx context.Context, commentID string, input models.CommentInput) <-chan models.Resource[models.Comment] {
	if errs := ValidateComment(input); len(errs) > 0 {
		return failNow[models.Comment](errs)
	}
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[models.Comment](err)
	}
	return run(ctx, func(ctx context.Context) (models.Comment, error) {
		if err := s.Comments.UpdateComment(ctx, token, commentID, input); err != nil {
			return models.Comment{}, err
		}
		comment, err := s.Comments.GetComment(ctx, commentID)
		if err != nil {
			return models.Comment{}, err
		}
		return enrichComment(ctx, s.Likes, s.Dislikes, comment)
	})
}

// DeleteComment returns the id of the deleted comment.
func (s *CommentService) DeleteComment(ctx context.Context, commentID string) <-chan models.Resource[string] {
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[string](err)
	}
	return run(ctx, func(ctx context.Context) (string, error) {
		if err := s.Comments.DeleteComment(ctx, token, commentID); err != nil {
			return "", err
		}
		s.Logger.Info().Str("comment_id", commentID).Msg("comment deleted")
		return commentID, nil
	})
}

func (s *CommentService) GetRestaurantComments(ctx context.Context, restaurantID string) <-chan models.Resource[[]models.Comment] {
	return run(ctx, func(ctx context.Context) ([]models.Comment, error) {
		comments, err := s.Comments.GetCommentsByRestaurant(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		return enrichComments(ctx, s.Likes, s.Dislikes, comments, s.Concurrency)
	})
}

func (s *CommentService) GetUserComments(ctx context.Context, userID string) <-chan models.Resource[[]models.Comment] {
	return run(ctx, func(ctx context.Context) ([]models.Comment, error) {
		comments, err := s.Comments.GetCommentsByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return enrichComments(ctx, s.Likes, s.Dislikes, comments, s.Concurrency)
	})
}
