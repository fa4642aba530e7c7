package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"clicktoeat/internal/models"
	"clicktoeat/internal/repositories"
)

type ReactionService struct {
	Comments repositories.CommentRepository
	Likes    repositories.ReactionRepository
	Dislikes repositories.ReactionRepository
	Users    repositories.UserRepository
	Tokens   repositories.TokenRepository
	Logger   zerolog.Logger
}

// ReactionStep is one backend call of a toggle.
type ReactionStep struct {
	Kind   models.ReactionAction
	Remove bool
}

func (st ReactionStep) String() string {
	if st.Remove {
		return "remove " + st.Kind.String()
	}
	return "add " + st.Kind.String()
}

// Plan returns the calls that move a user from current to the state the
// action asks for. An opposing reaction is always removed first.
func Plan(current models.Reaction, action models.ReactionAction) []ReactionStep {
	switch current {
	case models.ReactionNone:
		return []ReactionStep{{Kind: action}}
	case models.ReactionLiked:
		if action == models.ActionLike {
			return []ReactionStep{{Kind: models.ActionLike, Remove: true}}
		}
		return []ReactionStep{{Kind: models.ActionLike, Remove: true}, {Kind: models.ActionDislike}}
	case models.ReactionDisliked:
		if action == models.ActionDislike {
			return []ReactionStep{{Kind: models.ActionDislike, Remove: true}}
		}
		return []ReactionStep{{Kind: models.ActionDislike, Remove: true}, {Kind: models.ActionLike}}
	}
	panic(fmt.Sprintf("services: unknown reaction state %d", current))
}

// CurrentReaction reads the reaction of userID from an enriched comment.
func CurrentReaction(c models.Comment, userID string) (models.Reaction, error) {
	liked, disliked := c.HasLike(userID), c.HasDislike(userID)
	switch {
	case liked && disliked:
		return models.ReactionNone, models.ErrConflictingVote
	case liked:
		return models.ReactionLiked, nil
	case disliked:
		return models.ReactionDisliked, nil
	}
	return models.ReactionNone, nil
}

// Toggle applies a like or dislike press on a comment. The stream reports
// loading before the terminal value and clears it afterwards.
func (s *ReactionService) Toggle(ctx context.Context, commentID string, action models.ReactionAction) <-chan models.Resource[models.Comment] {
	ch := make(chan models.Resource[models.Comment], streamBuffer)
	go func() {
		defer close(ch)
		if !send(ctx, ch, models.Loading[models.Comment](true)) {
			return
		}
		comment, err := s.toggle(ctx, commentID, action)
		if err != nil {
			send(ctx, ch, models.FailureWith(comment, err))
		} else {
			send(ctx, ch, models.Success(comment))
		}
		send(ctx, ch, models.Loading[models.Comment](false))
	}()
	return ch
}

func (s *ReactionService) toggle(ctx context.Context, commentID string, action models.ReactionAction) (models.Comment, error) {
	token, user, err := currentUser(ctx, s.Tokens, s.Users, s.Logger)
	if err != nil {
		return models.Comment{}, err
	}
	comment, err := s.reload(ctx, commentID)
	if err != nil {
		return models.Comment{}, err
	}
	current, err := CurrentReaction(comment, user.ID)
	if err != nil {
		return comment, err
	}

	for _, step := range Plan(current, action) {
		repo := s.repo(step.Kind)
		if step.Remove {
			err = repo.Unreact(ctx, token, commentID)
		} else {
			err = repo.React(ctx, token, commentID)
		}
		if err != nil {
			s.Logger.Warn().Err(err).Str("comment_id", commentID).Stringer("step", step).Msg("reaction step failed")
			// The reported data only reflects calls the backend confirmed.
			if confirmed, rerr := s.reload(ctx, commentID); rerr == nil {
				comment = confirmed
			}
			return comment, err
		}
	}
	return s.reload(ctx, commentID)
}

func (s *ReactionService) reload(ctx context.Context, commentID string) (models.Comment, error) {
	comment, err := s.Comments.GetComment(ctx, commentID)
	if err != nil {
		return models.Comment{}, err
	}
	return enrichComment(ctx, s.Likes, s.Dislikes, comment)
}

func (s *ReactionService) repo(kind models.ReactionAction) repositories.ReactionRepository {
	if kind == models.ActionDislike {
		return s.Dislikes
	}
	return s.Likes
}
