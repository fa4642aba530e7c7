package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"clicktoeat/internal/cache"
	"clicktoeat/internal/config"
	"clicktoeat/internal/handlers"
	"clicktoeat/internal/remote"
	"clicktoeat/internal/repositories"
	"clicktoeat/internal/repositories/memory"
	"clicktoeat/internal/services"
	"clicktoeat/internal/session"
)

type application struct {
	logger zerolog.Logger
	cfg    config.Config

	tokens *session.Store
	redis  *redis.Client

	restaurantService *services.RestaurantService
	userService       *services.UserService

	restaurantHandler *handlers.RestaurantHandler
	commentHandler    *handlers.CommentHandler
	reactionHandler   *handlers.ReactionHandler
	favoriteHandler   *handlers.FavoriteHandler
	userHandler       *handlers.UserHandler
}

// backend groups the repositories of one data source.
type backend struct {
	restaurants repositories.RestaurantRepository
	comments    repositories.CommentRepository
	favorites   repositories.FavoriteRepository
	likes       repositories.ReactionRepository
	dislikes    repositories.ReactionRepository
	users       repositories.UserRepository
}

func newBackend(cfg config.Config) backend {
	if cfg.DataSource == config.SourceMemory {
		store := memory.New()
		return backend{
			restaurants: store,
			comments:    store,
			favorites:   store,
			likes:       store.Likes(),
			dislikes:    store.Dislikes(),
			users:       store,
		}
	}
	client := remote.NewClient(&http.Client{Timeout: cfg.Timeout()}, cfg.API.BaseURL)
	return backend{
		restaurants: remote.NewRestaurantRemote(client),
		comments:    remote.NewCommentRemote(client),
		favorites:   remote.NewFavoriteRemote(client),
		likes:       remote.NewLikeRemote(client),
		dislikes:    remote.NewDislikeRemote(client),
		users:       remote.NewUserRemote(client),
	}
}

func initializeApp(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*application, error) {
	tokens, err := session.NewStore(cfg.Session.TokenPath)
	if err != nil {
		return nil, err
	}

	app := &application{logger: logger, cfg: cfg, tokens: tokens}
	b := newBackend(cfg)

	// Redis is optional. Without it restaurant reads go straight to the backend.
	if cfg.Redis.Addr != "" {
		rdb, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		app.redis = rdb
		b.restaurants = repositories.NewCachedRestaurantRepository(
			b.restaurants,
			cache.NewRedisAdapter(rdb, "clicktoeat:"),
			cfg.CacheTTL(),
			logger.With().Str("component", "restaurant_cache").Logger(),
		)
	}

	svcLog := logger.With().Str("component", "services").Logger()

	app.restaurantService = &services.RestaurantService{
		Restaurants: b.restaurants,
		Comments:    b.comments,
		Favorites:   b.favorites,
		Likes:       b.likes,
		Dislikes:    b.dislikes,
		Users:       b.users,
		Tokens:      tokens,
		Logger:      svcLog,
		Concurrency: cfg.API.Concurrency,
	}
	commentService := &services.CommentService{
		Comments:    b.comments,
		Likes:       b.likes,
		Dislikes:    b.dislikes,
		Tokens:      tokens,
		Logger:      svcLog,
		Concurrency: cfg.API.Concurrency,
	}
	reactionService := &services.ReactionService{
		Comments: b.comments,
		Likes:    b.likes,
		Dislikes: b.dislikes,
		Users:    b.users,
		Tokens:   tokens,
		Logger:   svcLog,
	}
	favoriteService := &services.FavoriteService{
		Favorites: b.favorites,
		Users:     b.users,
		Tokens:    tokens,
		Logger:    svcLog,
	}
	app.userService = &services.UserService{
		Users:  b.users,
		Tokens: tokens,
		Logger: svcLog,
	}

	app.restaurantHandler = &handlers.RestaurantHandler{Service: app.restaurantService}
	app.commentHandler = &handlers.CommentHandler{Service: commentService}
	app.reactionHandler = &handlers.ReactionHandler{Service: reactionService}
	app.favoriteHandler = &handlers.FavoriteHandler{Service: favoriteService}
	app.userHandler = &handlers.UserHandler{Service: app.userService}

	return app, nil
}

func (app *application) close() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error().Err(err).Msg("closing redis")
		}
	}
}
