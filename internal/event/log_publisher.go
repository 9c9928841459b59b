package event

import (
	"context"

	"go-blog/pkg/logger"

	"go.uber.org/zap"
)

// LogPublisher writes events to the application log.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, e Event) error {
	logger.L.Info("Domain event",
		zap.String("type", string(e.Type)),
		zap.Uint("actorID", e.ActorID),
		zap.Uint("postID", e.PostID),
		zap.Uint("commentID", e.CommentID),
		zap.Uint("authorID", e.AuthorID))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
