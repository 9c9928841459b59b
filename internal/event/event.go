// Package event publishes domain events about posts, comments and follows.
package event

import (
	"context"
	"time"
)

type Type string

const (
	PostCreated    Type = "post.created"
	PostUpdated    Type = "post.updated"
	CommentCreated Type = "comment.created"
	FollowCreated  Type = "follow.created"
	FollowDeleted  Type = "follow.deleted"
)

// Event is a fact about something that changed in the store.
type Event struct {
	Type       Type      `json:"type"`
	ActorID    uint      `json:"actor_id"`
	PostID     uint      `json:"post_id,omitempty"`
	CommentID  uint      `json:"comment_id,omitempty"`
	AuthorID   uint      `json:"author_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New stamps an event with the current time.
func New(t Type, actorID uint) Event {
	return Event{Type: t, ActorID: actorID, OccurredAt: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}
