package service

import (
	"fmt"

	"go-blog/internal/form"
	"go-blog/internal/model"
	"go-blog/internal/repository"
	"go-blog/pkg/logger"
	"go-blog/pkg/pagination"

	"go.uber.org/zap"
)

type GroupPage = pagination.Page[model.Group]

// GroupService lists groups and manages them out of band.
type GroupService struct {
	groups   *repository.GroupRepository
	pageSize int
}

func NewGroupService(groups *repository.GroupRepository, pageSize int) *GroupService {
	if pageSize <= 0 {
		pageSize = 7
	}
	return &GroupService{groups: groups, pageSize: pageSize}
}

func (s *GroupService) ListGroups(rawPage string) (GroupPage, error) {
	total, err := s.groups.Count()
	if err != nil {
		return GroupPage{}, fmt.Errorf("failed to count groups: %w", err)
	}
	w := pagination.NewWindow(total, s.pageSize, rawPage)
	groups, err := s.groups.List(w.Limit(), w.Offset())
	if err != nil {
		return GroupPage{}, fmt.Errorf("failed to list groups: %w", err)
	}
	return pagination.NewPage(groups, w), nil
}

// Create validates f and stores a new group.
func (s *GroupService) Create(f form.GroupForm) (*model.Group, form.Errors, error) {
	if errs := f.Clean(); !errs.Valid() {
		return nil, errs, nil
	}

	existing, err := s.groups.FindBySlug(f.Slug)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrSlugTaken
	}

	group := &model.Group{Title: f.Title, Slug: f.Slug, Description: f.Description}
	if err := s.groups.Create(group); err != nil {
		return nil, nil, fmt.Errorf("failed to create group: %w", err)
	}
	logger.L.Info("Group created", zap.Uint("groupID", group.ID), zap.String("slug", group.Slug))
	return group, nil, nil
}

// Delete removes the group; its posts remain without a group.
func (s *GroupService) Delete(slug string) error {
	group, err := s.groups.FindBySlug(slug)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrNotFound
	}
	if err := s.groups.Delete(group.ID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	logger.L.Info("Group deleted", zap.String("slug", slug))
	return nil
}
