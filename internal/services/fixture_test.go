package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
	"clicktoeat/internal/repositories/memory"
)

type tokenStub struct {
	mu    sync.Mutex
	token string
}

func (t *tokenStub) Token(context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.token == "" {
		return "", models.ErrNotLoggedIn
	}
	return t.token, nil
}

func (t *tokenStub) Save(_ context.Context, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
	return nil
}

func (t *tokenStub) Clear(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = ""
	return nil
}

func (t *tokenStub) ClearIf(_ context.Context, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.token == token {
		t.token = ""
	}
	return nil
}

func (t *tokenStub) current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token
}

type fixture struct {
	store       *memory.Store
	tokens      *tokenStub
	restaurants *RestaurantService
	comments    *CommentService
	reactions   *ReactionService
	favorites   *FavoriteService
	users       *UserService
}

func newFixture() *fixture {
	store := memory.New()
	tokens := &tokenStub{}
	logger := zerolog.Nop()
	return &fixture{
		store:  store,
		tokens: tokens,
		restaurants: &RestaurantService{
			Restaurants: store,
			Comments:    store,
			Favorites:   store,
			Likes:       store.Likes(),
			Dislikes:    store.Dislikes(),
			Users:       store,
			Tokens:      tokens,
			Logger:      logger,
		},
		comments: &CommentService{
			Comments: store,
			Likes:    store.Likes(),
			Dislikes: store.Dislikes(),
			Tokens:   tokens,
			Logger:   logger,
		},
		reactions: &ReactionService{
			Comments: store,
			Likes:    store.Likes(),
			Dislikes: store.Dislikes(),
			Users:    store,
			Tokens:   tokens,
			Logger:   logger,
		},
		favorites: &FavoriteService{
			Favorites: store,
			Users:     store,
			Tokens:    tokens,
			Logger:    logger,
		},
		users: &UserService{
			Users:  store,
			Tokens: tokens,
			Logger: logger,
		},
	}
}

// login seeds a user and stores a valid token for it.
func (f *fixture) login(name string) models.User {
	u := f.store.SeedUser(name, name+"@example.com", "secret1")
	f.tokens.token = f.store.IssueToken(u.ID)
	return u
}

type failingComments struct {
	repositories.CommentRepository
	failFor string
}

func (f failingComments) GetCommentsByRestaurant(ctx context.Context, restaurantID string) ([]models.Comment, error) {
	if restaurantID == f.failFor {
		return nil, &models.DefaultError{Status: http.StatusInternalServerError, Message: "comments unavailable"}
	}
	return f.CommentRepository.GetCommentsByRestaurant(ctx, restaurantID)
}

type failingReact struct {
	repositories.ReactionRepository
}

func (failingReact) React(context.Context, string, string) error {
	return &models.DefaultError{Status: http.StatusInternalServerError, Message: "reaction unavailable"}
}

type failingLogout struct {
	repositories.UserRepository
}

func (failingLogout) Logout(context.Context, string) error {
	return &models.DefaultError{Status: http.StatusBadGateway, Message: "upstream down"}
}

// loginDuringCheck stores a fresh login while the stale token is being
// revalidated, then rejects the stale token.
type loginDuringCheck struct {
	repositories.UserRepository
	tokens repositories.TokenRepository
	fresh  string
}

func (l loginDuringCheck) Authenticate(ctx context.Context, _ string) (models.User, error) {
	if err := l.tokens.Save(ctx, l.fresh); err != nil {
		return models.User{}, err
	}
	return models.User{}, &models.DefaultError{Status: http.StatusUnauthorized, Message: "token expired"}
}
