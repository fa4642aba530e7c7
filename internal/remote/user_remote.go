package remote

import (
	"context"
	"net/http"

	"clicktoeat/internal/models"
)

// UserRemote implements repositories.UserRepository.
type UserRemote struct {
	client *Client
}

func NewUserRemote(client *Client) *UserRemote {
	return &UserRemote{client: client}
}

func (r *UserRemote) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := do[models.TokenResponse](ctx, r.client, call{
		operation: "users.login",
		method:    http.MethodPost,
		path:      "/api/users/login",
		body:      creds,
	})
	return resp.Token, err
}

func (r *UserRemote) Logout(ctx context.Context, token string) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: "users.logout",
		method:    http.MethodPost,
		path:      "/api/users/logout",
		token:     token,
	})
	return err
}

func (r *UserRemote) Refresh(ctx context.Context, token string) (string, error) {
	resp, err := do[models.TokenResponse](ctx, r.client, call{
		operation: "users.refresh",
		method:    http.MethodPost,
		path:      "/api/users/refresh",
		token:     token,
	})
	return resp.Token, err
}

func (r *UserRemote) Authenticate(ctx context.Context, token string) (models.User, error) {
	return do[models.User](ctx, r.client, call{
		operation: "users.authenticate",
		method:    http.MethodGet,
		path:      "/api/users/authenticate",
		token:     token,
	})
}

func (r *UserRemote) GetUsers(ctx context.Context) ([]models.User, error) {
	return do[[]models.User](ctx, r.client, call{
		operation: "users.list",
		method:    http.MethodGet,
		path:      "/api/users",
	})
}

func (r *UserRemote) GetUser(ctx context.Context, id string) (models.User, error) {
	return do[models.User](ctx, r.client, call{
		operation: "users.get",
		method:    http.MethodGet,
		path:      pathf("/api/users/%s", id),
	})
}

func (r *UserRemote) Register(ctx context.Context, input models.AccountInput) (string, error) {
	resp, err := do[models.InsertResponse](ctx, r.client, call{
		operation: "users.register",
		method:    http.MethodPost,
		path:      "/api/users",
		form:      accountForm(input),
	})
	return resp.InsertID, err
}

func (r *UserRemote) UpdateAccount(ctx context.Context, token string, input models.AccountInput) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: "users.update",
		method:    http.MethodPut,
		path:      "/api/users",
		token:     token,
		form:      accountForm(input),
	})
	return err
}

func (r *UserRemote) DeleteAccount(ctx context.Context, token string) error {
	_, err := do[models.MessageResponse](ctx, r.client, call{
		operation: "users.delete",
		method:    http.MethodDelete,
		path:      "/api/users",
		token:     token,
	})
	return err
}

func accountForm(input models.AccountInput) *form {
	fields := map[string]string{
		"username": input.Username,
		"email":    input.Email,
	}
	if input.Password != "" {
		fields["password"] = input.Password
	}
	return &form{fields: fields, image: input.Image}
}
