package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
)

// enrichComment fills the like and dislike user ids of c.
func enrichComment(ctx context.Context, likes, dislikes repositories.ReactionRepository, c models.Comment) (models.Comment, error) {
	g, gctx := errgroup.WithContext(ctx)
	var likers, dislikers []models.User
	g.Go(func() error {
		var err error
		likers, err = likes.GetReactors(gctx, c.ID)
		return err
	})
	g.Go(func() error {
		var err error
		dislikers, err = dislikes.GetReactors(gctx, c.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return c, err
	}
	c.Likes = models.UserIDs(likers)
	c.Dislikes = models.UserIDs(dislikers)
	return c, nil
}

// enrichComments enriches every comment concurrently, keeping order. At
// most limit comments are in flight when limit is positive.
func enrichComments(ctx context.Context, likes, dislikes repositories.ReactionRepository, comments []models.Comment, limit int) ([]models.Comment, error) {
	out := make([]models.Comment, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, c := range comments {
		g.Go(func() error {
			enriched, err := enrichComment(gctx, likes, dislikes, c)
			if err != nil {
				return err
			}
			out[i] = enriched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
