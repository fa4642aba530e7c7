package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicktoeat/internal/models"
)

func TestCreateCommentValidation(t *testing.T) {
	tests := []struct {
		name   string
		input  models.CommentInput
		fields []string
	}{
		{name: "blank review", input: models.CommentInput{Review: "  ", Rating: 4}, fields: []string{"review"}},
		{name: "rating too low", input: models.CommentInput{Review: "ok", Rating: 0}, fields: []string{"rating"}},
		{name: "rating too high", input: models.CommentInput{Review: "ok", Rating: 6}, fields: []string{"rating"}},
		{name: "empty review and zero rating", input: models.CommentInput{Rating: 0}, fields: []string{"review", "rating"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.login("ann")
			r := f.store.SeedRestaurant("Sushi Bar", "fresh")

			values := models.Collect(f.comments.CreateComment(context.Background(), r.ID, tt.input))
			require.Len(t, values, 1, "validation failures carry no loading value")
			assert.Equal(t, models.StateFailure, values[0].State)
			errs, ok := models.AsFieldErrors(values[0].Err)
			require.True(t, ok)
			require.Len(t, errs, len(tt.fields))
			for i, field := range tt.fields {
				assert.Equal(t, field, errs[i].Field)
			}
			assert.Empty(t, f.store.Comments())
		})
	}
}

func TestCreateCommentRequiresLogin(t *testing.T) {
	f := newFixture()
	r := f.store.SeedRestaurant("Sushi Bar", "fresh")

	values := models.Collect(f.comments.CreateComment(context.Background(), r.ID, models.CommentInput{Review: "great", Rating: 5}))
	require.Len(t, values, 1)
	assert.ErrorIs(t, values[0].Err, models.ErrNotLoggedIn)
	assert.Empty(t, f.store.Comments())
}

func TestCreateCommentReturnsStoredComment(t *testing.T) {
	f := newFixture()
	u := f.login("ann")
	r := f.store.SeedRestaurant("Sushi Bar", "fresh")

	values := models.Collect(f.comments.CreateComment(context.Background(), r.ID, models.CommentInput{Review: " great ", Rating: 5}))
	require.Len(t, values, 2)
	assert.True(t, values[0].Loading)
	require.Equal(t, models.StateSuccess, values[1].State)

	got := values[1].Data
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "great", got.Review)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, u.ID, got.User.ID)
	assert.Equal(t, r.ID, got.RestaurantID)
	assert.NotNil(t, got.Likes)
	assert.Empty(t, got.Likes)
	assert.NotNil(t, got.Dislikes)
	assert.Empty(t, got.Dislikes)

	stored := f.store.Comments()
	require.NotEmpty(t, stored)
	assert.Equal(t, got.ID, stored[len(stored)-1].ID)
}

func TestEditAndDeleteComment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u := f.login("ann")
	fan := f.store.SeedUser("bob", "bob@example.com", "secret2")
	r := f.store.SeedRestaurant("Sushi Bar", "fresh")
	c := f.store.SeedComment(u.ID, r.ID, "fine", 3)
	f.store.SeedLike(fan.ID, c.ID)

	edited, err := models.Await(f.comments.EditComment(ctx, c.ID, models.CommentInput{Review: "better", Rating: 4}))
	require.NoError(t, err)
	assert.Equal(t, "better", edited.Review)
	assert.Equal(t, 4, edited.Rating)
	assert.Equal(t, []string{fan.ID}, edited.Likes)

	id, err := models.Await(f.comments.DeleteComment(ctx, c.ID))
	require.NoError(t, err)
	assert.Equal(t, c.ID, id)
	assert.Empty(t, f.store.Comments())

	_, err = models.Await(f.comments.DeleteComment(ctx, c.ID))
	require.Error(t, err)
}

func TestDeleteMissingCommentLeavesOthers(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	u := f.login("ann")
	r := f.store.SeedRestaurant("Sushi Bar", "fresh")
	f.store.SeedComment(u.ID, r.ID, "first", 4)
	f.store.SeedComment(u.ID, r.ID, "second", 2)
	before := f.store.Comments()
	require.Len(t, before, 2)

	_, err := models.Await(f.comments.DeleteComment(ctx, "no-such-comment"))
	require.Error(t, err)
	de, ok := models.AsDefault(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, de.Status)
	assert.Equal(t, before, f.store.Comments())
}

func TestGetUserComments(t *testing.T) {
	f := newFixture()
	ann := f.store.SeedUser("ann", "ann@example.com", "secret1")
	bob := f.store.SeedUser("bob", "bob@example.com", "secret2")
	r := f.store.SeedRestaurant("Sushi Bar", "fresh")
	mine := f.store.SeedComment(ann.ID, r.ID, "mine", 5)
	f.store.SeedComment(bob.ID, r.ID, "theirs", 2)
	f.store.SeedDislike(bob.ID, mine.ID)

	got, err := models.Await(f.comments.GetUserComments(context.Background(), ann.ID))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
	assert.Equal(t, []string{bob.ID}, got[0].Dislikes)

	all, err := models.Await(f.comments.GetRestaurantComments(context.Background(), r.ID))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
