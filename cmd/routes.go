package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"clicktoeat/internal/metrics"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, metrics.InstrumentHandler, app.logRequest, secureHeaders, makeResponseJSON)
	streamMiddleware := alice.New(app.recoverPanic, metrics.InstrumentHandler, app.logRequest)

	mux := pat.New()

	// Restaurants
	mux.Get("/restaurants", standardMiddleware.ThenFunc(app.restaurantHandler.GetRestaurants))
	mux.Post("/restaurants", standardMiddleware.ThenFunc(app.restaurantHandler.CreateRestaurant))
	mux.Get("/restaurants/:id", standardMiddleware.ThenFunc(app.restaurantHandler.GetRestaurant))
	mux.Put("/restaurants/:id", standardMiddleware.ThenFunc(app.restaurantHandler.UpdateRestaurant))
	mux.Del("/restaurants/:id", standardMiddleware.ThenFunc(app.restaurantHandler.DeleteRestaurant))
	mux.Post("/restaurants/:id/favorite", standardMiddleware.ThenFunc(app.favoriteHandler.ToggleFavorite))
	mux.Get("/restaurants/:id/comments", standardMiddleware.ThenFunc(app.commentHandler.GetRestaurantComments))
	mux.Post("/restaurants/:id/comments", standardMiddleware.ThenFunc(app.commentHandler.CreateComment))
	mux.Get("/favorites", standardMiddleware.ThenFunc(app.restaurantHandler.GetFavoriteRestaurants))

	// Comments
	mux.Put("/comments/:id", standardMiddleware.ThenFunc(app.commentHandler.EditComment))
	mux.Del("/comments/:id", standardMiddleware.ThenFunc(app.commentHandler.DeleteComment))
	mux.Post("/comments/:id/like", standardMiddleware.ThenFunc(app.reactionHandler.Like))
	mux.Post("/comments/:id/dislike", standardMiddleware.ThenFunc(app.reactionHandler.Dislike))

	// Session
	mux.Post("/session/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Post("/session/logout", standardMiddleware.ThenFunc(app.userHandler.Logout))
	mux.Post("/session/refresh", standardMiddleware.ThenFunc(app.userHandler.Refresh))
	mux.Get("/session/user", standardMiddleware.ThenFunc(app.userHandler.CurrentUser))

	// Users
	mux.Post("/users", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Put("/users/me", standardMiddleware.ThenFunc(app.userHandler.UpdateAccount))
	mux.Del("/users/me", standardMiddleware.ThenFunc(app.userHandler.DeleteAccount))
	mux.Get("/users", standardMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Get("/users/:id", standardMiddleware.ThenFunc(app.userHandler.GetUser))
	mux.Get("/users/:id/comments", standardMiddleware.ThenFunc(app.commentHandler.GetUserComments))
	mux.Get("/users/:id/favorites", standardMiddleware.ThenFunc(app.favoriteHandler.GetUserFavorites))

	// Streams
	mux.Get("/ws/restaurants", streamMiddleware.ThenFunc(app.streamRestaurants))
	mux.Get("/ws/restaurants/:id", streamMiddleware.ThenFunc(app.streamRestaurant))

	mux.Get("/metrics", metrics.Handler())
	mux.Get("/health", standardMiddleware.ThenFunc(app.health))

	return mux
}
