package service

import (
	"context"
	"fmt"

	"go-blog/internal/event"
	"go-blog/internal/model"
	"go-blog/internal/repository"
	"go-blog/pkg/logger"

	"go.uber.org/zap"
)

// FollowService manages who follows whom.
type FollowService struct {
	follows *repository.FollowRepository
	users   *repository.UserRepository
	events  event.Publisher
}

func NewFollowService(follows *repository.FollowRepository, users *repository.UserRepository, events event.Publisher) *FollowService {
	return &FollowService{follows: follows, users: users, events: events}
}

// FollowStats counts both directions of a user's follow relations.
type FollowStats struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

func (s *FollowService) IsFollowing(followerID, authorID uint) (bool, error) {
	return s.follows.Exists(followerID, authorID)
}

func (s *FollowService) Stats(userID uint) (FollowStats, error) {
	followers, err := s.follows.CountFollowers(userID)
	if err != nil {
		return FollowStats{}, err
	}
	following, err := s.follows.CountFollowing(userID)
	if err != nil {
		return FollowStats{}, err
	}
	return FollowStats{Followers: followers, Following: following}, nil
}

func (s *FollowService) resolveAuthor(username string) (*model.User, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}
	return author, nil
}

// Follow makes follower follow the user named username. Following yourself
// is a silent no-op, and following twice keeps a single relation.
func (s *FollowService) Follow(ctx context.Context, follower *model.User, username string) (*model.User, error) {
	author, err := s.resolveAuthor(username)
	if err != nil {
		return nil, err
	}
	if author.ID == follower.ID {
		return author, nil
	}

	_, created, err := s.follows.CreateIfAbsent(follower.ID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to follow %s: %w", username, err)
	}
	if created {
		logger.L.Info("Follow created", zap.Uint("userID", follower.ID), zap.Uint("authorID", author.ID))
		s.publish(ctx, event.FollowCreated, follower.ID, author.ID)
	}
	return author, nil
}

// Unfollow removes the relation. Removing a relation that does not exist
// returns ErrFollowNotFound; unfollowing yourself is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, follower *model.User, username string) (*model.User, error) {
	author, err := s.resolveAuthor(username)
	if err != nil {
		return nil, err
	}
	if author.ID == follower.ID {
		return author, nil
	}

	removed, err := s.follows.Delete(follower.ID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to unfollow %s: %w", username, err)
	}
	if !removed {
		logger.L.Error("Unfollow of a missing relation", zap.Uint("userID", follower.ID), zap.Uint("authorID", author.ID))
		return nil, ErrFollowNotFound
	}

	logger.L.Info("Follow deleted", zap.Uint("userID", follower.ID), zap.Uint("authorID", author.ID))
	s.publish(ctx, event.FollowDeleted, follower.ID, author.ID)
	return author, nil
}

func (s *FollowService) publish(ctx context.Context, t event.Type, actorID, authorID uint) {
	if s.events == nil {
		return
	}
	e := event.New(t, actorID)
	e.AuthorID = authorID
	if err := s.events.Publish(ctx, e); err != nil {
		logger.L.Warn("Failed to publish event", zap.String("type", string(t)), zap.Error(err))
	}
}
