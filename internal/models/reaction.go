package models

// Reaction is the state of one user towards one comment.
type Reaction int

const (
	ReactionNone Reaction = iota
	ReactionLiked
	ReactionDisliked
)

func (r Reaction) String() string {
	switch r {
	case ReactionLiked:
		return "liked"
	case ReactionDisliked:
		return "disliked"
	default:
		return "none"
	}
}

// ReactionAction is what the user asked for.
type ReactionAction int

const (
	ActionLike ReactionAction = iota
	ActionDislike
)

func (a ReactionAction) String() string {
	if a == ActionDislike {
		return "dislike"
	}
	return "like"
}
