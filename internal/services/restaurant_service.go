package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
)

type RestaurantService struct {
	Restaurants repositories.RestaurantRepository
	Comments    repositories.CommentRepository
	Favorites   repositories.FavoriteRepository
	Likes       repositories.ReactionRepository
	Dislikes    repositories.ReactionRepository
	Users       repositories.UserRepository
	Tokens      repositories.TokenRepository
	Logger      zerolog.Logger
	// Concurrency caps the restaurants aggregated at once and the comments
	// enriched at once per restaurant. Zero is unbounded.
	Concurrency int
}

// RestaurantQuery selects the restaurants GetRestaurants returns.
type RestaurantQuery struct {
	// FavoritesOf keeps only restaurants favorited by this user id.
	FavoritesOf string
	// Refresh drops cached data before reading.
	Refresh bool
}

func (s *RestaurantService) GetRestaurants(ctx context.Context, q RestaurantQuery) <-chan models.Resource[[]models.TransformedRestaurant] {
	return run(ctx, func(ctx context.Context) ([]models.TransformedRestaurant, error) {
		return s.aggregate(ctx, q)
	})
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, id string, refresh bool) <-chan models.Resource[models.TransformedRestaurant] {
	return run(ctx, func(ctx context.Context) (models.TransformedRestaurant, error) {
		if refresh {
			s.invalidate(ctx)
		}
		var (
			restaurant models.Restaurant
			viewer     string
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			restaurant, err = s.Restaurants.GetRestaurant(gctx, id)
			return err
		})
		g.Go(func() error {
			viewer = s.viewerID(gctx)
			return nil
		})
		if err := g.Wait(); err != nil {
			return models.TransformedRestaurant{}, s.fail(err, id)
		}
		tr, err := s.transform(ctx, restaurant, viewer)
		if err != nil {
			return models.TransformedRestaurant{}, s.fail(err, id)
		}
		return tr, nil
	})
}

// GetFavoriteRestaurants returns the restaurants favorited by the session user.
func (s *RestaurantService) GetFavoriteRestaurants(ctx context.Context, refresh bool) <-chan models.Resource[[]models.TransformedRestaurant] {
	if _, err := s.Tokens.Token(ctx); err != nil {
		return failNow[[]models.TransformedRestaurant](err)
	}
	return run(ctx, func(ctx context.Context) ([]models.TransformedRestaurant, error) {
		_, user, err := currentUser(ctx, s.Tokens, s.Users, s.Logger)
		if err != nil {
			return nil, err
		}
		return s.aggregate(ctx, RestaurantQuery{FavoritesOf: user.ID, Refresh: refresh})
	})
}

func (s *RestaurantService) aggregate(ctx context.Context, q RestaurantQuery) ([]models.TransformedRestaurant, error) {
	if q.Refresh {
		s.invalidate(ctx)
	}

	var (
		restaurants []models.Restaurant
		viewer      string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		restaurants, err = s.Restaurants.GetRestaurants(gctx)
		return err
	})
	g.Go(func() error {
		// A favorites view is seen through the eyes of the user it filters on.
		if q.FavoritesOf != "" {
			viewer = q.FavoritesOf
			return nil
		}
		viewer = s.viewerID(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail(err, "")
	}

	out := make([]models.TransformedRestaurant, len(restaurants))
	g, gctx = errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}
	for i, r := range restaurants {
		g.Go(func() error {
			tr, err := s.transform(gctx, r, viewer)
			if err != nil {
				return err
			}
			out[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.fail(err, "")
	}

	if q.FavoritesOf == "" {
		return out, nil
	}
	filtered := make([]models.TransformedRestaurant, 0, len(out))
	for _, tr := range out {
		for _, id := range tr.FavoritedBy {
			if id == q.FavoritesOf {
				filtered = append(filtered, tr)
				break
			}
		}
	}
	return filtered, nil
}

// transform fetches the comments and favoriting users of r in parallel.
func (s *RestaurantService) transform(ctx context.Context, r models.Restaurant, viewer string) (models.TransformedRestaurant, error) {
	var (
		comments []models.Comment
		fans     []models.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := s.Comments.GetCommentsByRestaurant(gctx, r.ID)
		if err != nil {
			return err
		}
		comments, err = enrichComments(gctx, s.Likes, s.Dislikes, raw, s.Concurrency)
		return err
	})
	g.Go(func() error {
		var err error
		fans, err = s.Favorites.GetUsersWhoFavorited(gctx, r.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.TransformedRestaurant{}, err
	}
	return TransformRestaurant(r, comments, models.UserIDs(fans), viewer), nil
}

// viewerID is the session user id, empty for an anonymous viewer.
func (s *RestaurantService) viewerID(ctx context.Context) string {
	_, user, err := currentUser(ctx, s.Tokens, s.Users, s.Logger)
	if err != nil {
		if !errors.Is(err, models.ErrNotLoggedIn) {
			s.Logger.Warn().Err(err).Msg("resolving session user failed, aggregating anonymously")
		}
		return ""
	}
	return user.ID
}

func (s *RestaurantService) invalidate(ctx context.Context) {
	inv, ok := s.Restaurants.(repositories.Invalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx); err != nil {
		s.Logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}

func (s *RestaurantService) fail(err error, id string) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if de, ok := models.AsDefault(err); ok && id != "" && de.Status == http.StatusNotFound {
		return err
	}
	ev := s.Logger.Error().Err(err)
	if id != "" {
		ev = ev.Str("restaurant_id", id)
	}
	ev.Msg("restaurant aggregation failed")
	return models.ErrRestaurantsFailed
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, input models.RestaurantInput) <-chan models.Resource[models.Restaurant] {
	if errs := ValidateRestaurant(input, true); len(errs) > 0 {
		return failNow[models.Restaurant](errs)
	}
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[models.Restaurant](err)
	}
	return run(ctx, func(ctx context.Context) (models.Restaurant, error) {
		id, err := s.Restaurants.CreateRestaurant(ctx, token, input)
		if err != nil {
			return models.Restaurant{}, err
		}
		return s.Restaurants.GetRestaurant(ctx, id)
	})
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id string, input models.RestaurantInput) <-chan models.Resource[models.Restaurant] {
	if errs := ValidateRestaurant(input, false); len(errs) > 0 {
		return failNow[models.Restaurant](errs)
	}
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[models.Restaurant](err)
	}
	return run(ctx, func(ctx context.Context) (models.Restaurant, error) {
		if err := s.Restaurants.UpdateRestaurant(ctx, token, id, input); err != nil {
			return models.Restaurant{}, err
		}
		return s.Restaurants.GetRestaurant(ctx, id)
	})
}

// DeleteRestaurant returns the id of the deleted restaurant.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id string) <-chan models.Resource[string] {
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return failNow[string](err)
	}
	return run(ctx, func(ctx context.Context) (string, error) {
		if err := s.Restaurants.DeleteRestaurant(ctx, token, id); err != nil {
			return "", err
		}
		return id, nil
	})
}
