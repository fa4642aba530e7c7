package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"clicktoeat/internal/models"
)

// RestaurantRemote implements repositories.RestaurantRepository.
type RestaurantRemote struct {
	client *Client
}

func NewRestaurantRemote(client *Client) *RestaurantRemote {
	return &RestaurantRemote{client: client}
}

func (r *RestaurantRemote) GetRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return do[[]models.Restaurant](ctx, r.client, call{
		operation: "restaurants.list",
		method:    http.MethodGet,
		path:      "/api/restaurants",
	})
}

func (r *RestaurantRemote) GetRestaurant(ctx context.Context, id string) (models.Restaurant, error) {
	return do[models.Restaurant](ctx, r.client, call{
		operation: "restaurants.get",
		method:    http.MethodGet,
		path:      pathf("/api/restaurants/%s", id),
	})
}

func (r *RestaurantRemote) CreateRestaurant(ctx context.Context, token string, input models.RestaurantInput) (string, error) {
	f, err := restaurantForm(input)
	if err != nil {
		return "", err
	}
	resp, err := do[models.InsertResponse](ctx, r.client, call{
		operation: "restaurants.create",
		method:    http.MethodPost,
		path:      "/api/restaurants",
		token:     token,
		form:      f,
	})
	return resp.InsertID, err
}

func (r *RestaurantRemote) UpdateRestaurant(ctx context.Context, token, id string, input models.RestaurantInput) error {
	f, err := restaurantForm(input)
	if err != nil {
		return err
	}
	_, err = do[models.MessageResponse](ctx, r.client, call{
		operation: "restaurants.update",
		method:    http.MethodPut,
		path:      pathf("/api/restaurants/%s", id),
		token:     token,
		form:      f,
	})
	return err
}

func (r *RestaurantRemote) DeleteRestaurant(ctx context.Context, token, id string) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: "restaurants.delete",
		method:    http.MethodDelete,
		path:      pathf("/api/restaurants/%s", id),
		token:     token,
	})
	return err
}

// restaurantForm flattens the input; locations travel as a JSON field.
func restaurantForm(input models.RestaurantInput) (*form, error) {
	locations := input.Locations
	if locations == nil {
		locations = []models.Location{}
	}
	data, err := json.Marshal(locations)
	if err != nil {
		return nil, models.NewDefaultError("unable to encode locations")
	}
	return &form{
		fields: map[string]string{
			"name":        input.Name,
			"description": input.Description,
			"locations":   string(data),
		},
		image: input.Image,
	}, nil
}
