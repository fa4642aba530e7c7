package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"clicktoeat/internal/handlers"
	"clicktoeat/internal/models"
	"clicktoeat/internal/services"
)

const (
	readLimit     = 1 << 10
	writeDeadline = 5 * time.Second
	closeGrace    = time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (app *application) streamRestaurants(w http.ResponseWriter, r *http.Request) {
	q := services.RestaurantQuery{
		FavoritesOf: r.URL.Query().Get("favorites_of"),
		Refresh:     r.URL.Query().Get("refresh") == "true",
	}
	serveStream(w, r, func(ctx context.Context) <-chan models.Resource[[]models.TransformedRestaurant] {
		return app.restaurantService.GetRestaurants(ctx, q)
	})
}

func (app *application) streamRestaurant(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	refresh := r.URL.Query().Get("refresh") == "true"
	serveStream(w, r, func(ctx context.Context) <-chan models.Resource[models.TransformedRestaurant] {
		return app.restaurantService.GetRestaurant(ctx, id, refresh)
	})
}

// serveStream upgrades the connection and writes every value of the stream
// as a frame. The stream is cancelled as soon as the client goes away.
func serveStream[T any](w http.ResponseWriter, r *http.Request, open func(ctx context.Context) <-chan models.Resource[T]) {
	logger := zerolog.Ctx(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reading is only used to notice the client closing the socket.
	conn.SetReadLimit(readLimit)
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for value := range open(ctx) {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteJSON(handlers.NewFrame(value)); err != nil {
			logger.Debug().Err(err).Msg("websocket write failed")
			return
		}
	}
	if ctx.Err() != nil {
		return
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGrace)); err != nil {
		logger.Debug().Err(err).Msg("websocket close failed")
	}
}
