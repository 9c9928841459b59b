package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go-blog/internal/event"
	"go-blog/internal/form"
	"go-blog/internal/model"
	"go-blog/internal/repository"
	"go-blog/pkg/logger"
	"go-blog/pkg/pagination"

	"go.uber.org/zap"
)

// PostPage is one page of a post listing.
type PostPage = pagination.Page[model.Post]

// PostService covers posts and their comments.
type PostService struct {
	posts    *repository.PostRepository
	comments *repository.CommentRepository
	groups   *repository.GroupRepository
	users    *repository.UserRepository
	images   *ImageService
	events   event.Publisher
	pageSize int
}

func NewPostService(
	posts *repository.PostRepository,
	comments *repository.CommentRepository,
	groups *repository.GroupRepository,
	users *repository.UserRepository,
	images *ImageService,
	events event.Publisher,
	pageSize int,
) *PostService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &PostService{
		posts:    posts,
		comments: comments,
		groups:   groups,
		users:    users,
		images:   images,
		events:   events,
		pageSize: pageSize,
	}
}

func (s *PostService) page(filter repository.PostFilter, rawPage string) (PostPage, error) {
	total, err := s.posts.Count(filter)
	if err != nil {
		return PostPage{}, fmt.Errorf("failed to count posts: %w", err)
	}
	w := pagination.NewWindow(total, s.pageSize, rawPage)
	items, err := s.posts.List(filter, w.Limit(), w.Offset())
	if err != nil {
		return PostPage{}, fmt.Errorf("failed to list posts: %w", err)
	}
	return pagination.NewPage(items, w), nil
}

// ListPosts pages through every post, newest first.
func (s *PostService) ListPosts(rawPage string) (PostPage, error) {
	return s.page(repository.PostFilter{}, rawPage)
}

func (s *PostService) ListGroupPosts(slug, rawPage string) (*model.Group, PostPage, error) {
	group, err := s.groups.FindBySlug(slug)
	if err != nil {
		return nil, PostPage{}, err
	}
	if group == nil {
		return nil, PostPage{}, ErrNotFound
	}
	page, err := s.page(repository.PostFilter{GroupID: group.ID}, rawPage)
	return group, page, err
}

func (s *PostService) ListAuthorPosts(username, rawPage string) (*model.User, PostPage, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, PostPage{}, err
	}
	if author == nil {
		return nil, PostPage{}, ErrNotFound
	}
	page, err := s.page(repository.PostFilter{AuthorID: author.ID}, rawPage)
	return author, page, err
}

// ListFeed pages through posts by authors the follower follows.
func (s *PostService) ListFeed(followerID uint, rawPage string) (PostPage, error) {
	return s.page(repository.PostFilter{FollowerID: followerID}, rawPage)
}

// GetPost finds a post by id whose author is username.
func (s *PostService) GetPost(username string, postID uint) (*model.Post, error) {
	post, err := s.posts.FindByIDAndAuthor(postID, username)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *PostService) ListComments(postID uint) ([]model.Comment, error) {
	return s.comments.FindByPost(postID)
}

// Groups returns the choices offered by the post form.
func (s *PostService) Groups() ([]model.Group, error) {
	return s.groups.All()
}

// cleanPostForm validates f and resolves its group choice.
func (s *PostService) cleanPostForm(f *form.PostForm) (*uint, form.Errors, error) {
	errs := f.Clean()
	groupID := f.GroupID()
	if groupID != nil && errs["group"] == "" {
		group, err := s.groups.FindByID(*groupID)
		if err != nil {
			return nil, nil, err
		}
		if group == nil {
			errs.Add("group", "Select a valid choice. That choice is not one of the available choices.")
		}
	}
	return groupID, errs, nil
}

func (s *PostService) storeImage(ctx context.Context, image *multipart.FileHeader, userID uint, errs form.Errors) (string, error) {
	if image == nil || !errs.Valid() {
		return "", nil
	}
	key, err := s.images.Store(ctx, image, userID)
	if err != nil {
		if errors.Is(err, ErrImageTooLarge) || errors.Is(err, ErrImageType) {
			errs.Add("image", err.Error())
			return "", nil
		}
		return "", err
	}
	return key, nil
}

// CreatePost validates f and stores a post owned by author. Any author the
// client might have sent is ignored. Returned form errors mean nothing was written.
func (s *PostService) CreatePost(ctx context.Context, author *model.User, f form.PostForm, image *multipart.FileHeader) (*model.Post, form.Errors, error) {
	groupID, errs, err := s.cleanPostForm(&f)
	if err != nil {
		return nil, nil, err
	}
	key, err := s.storeImage(ctx, image, author.ID, errs)
	if err != nil {
		return nil, nil, err
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	post := &model.Post{
		Text:     f.Text,
		AuthorID: author.ID,
		GroupID:  groupID,
		Image:    key,
	}
	if err := s.posts.Create(post); err != nil {
		s.images.Discard(ctx, key)
		logger.L.Error("Error saving post", zap.Uint("authorID", author.ID), zap.Error(err))
		return nil, nil, fmt.Errorf("failed to create post: %w", err)
	}
	post.Author = *author

	logger.L.Info("Post created", zap.Uint("postID", post.ID), zap.Uint("authorID", author.ID))
	e := event.New(event.PostCreated, author.ID)
	e.PostID = post.ID
	s.publish(ctx, e)
	return post, nil, nil
}

// UpdatePost replaces the text and group of post; an empty group choice
// removes the post from its group. A supplied image replaces the old one.
func (s *PostService) UpdatePost(ctx context.Context, editor *model.User, post *model.Post, f form.PostForm, image *multipart.FileHeader) (form.Errors, error) {
	if editor == nil || editor.ID != post.AuthorID {
		return nil, ErrNotAuthor
	}

	groupID, errs, err := s.cleanPostForm(&f)
	if err != nil {
		return nil, err
	}
	key, err := s.storeImage(ctx, image, editor.ID, errs)
	if err != nil {
		return nil, err
	}
	if !errs.Valid() {
		return errs, nil
	}

	fields := map[string]interface{}{"text": f.Text, "group_id": nil}
	if groupID != nil {
		fields["group_id"] = *groupID
	}
	oldImage := post.Image
	if key != "" {
		fields["image"] = key
	}
	if err := s.posts.Update(post, fields); err != nil {
		s.images.Discard(ctx, key)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if key != "" && oldImage != "" && oldImage != key {
		s.images.Discard(ctx, oldImage)
	}

	logger.L.Info("Post updated", zap.Uint("postID", post.ID), zap.Uint("authorID", editor.ID))
	e := event.New(event.PostUpdated, editor.ID)
	e.PostID = post.ID
	s.publish(ctx, e)
	return nil, nil
}

// AddComment stores a comment by author on post.
func (s *PostService) AddComment(ctx context.Context, author *model.User, post *model.Post, f form.CommentForm) (*model.Comment, form.Errors, error) {
	if errs := f.Clean(); !errs.Valid() {
		return nil, errs, nil
	}

	comment := &model.Comment{
		PostID:   post.ID,
		AuthorID: author.ID,
		Text:     f.Text,
	}
	if err := s.comments.Create(comment); err != nil {
		logger.L.Error("Error saving comment", zap.Uint("postID", post.ID), zap.Uint("authorID", author.ID), zap.Error(err))
		return nil, nil, fmt.Errorf("failed to create comment: %w", err)
	}
	comment.Author = *author

	e := event.New(event.CommentCreated, author.ID)
	e.PostID = post.ID
	e.CommentID = comment.ID
	e.AuthorID = post.AuthorID
	s.publish(ctx, e)
	return comment, nil, nil
}

func (s *PostService) publish(ctx context.Context, e event.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		logger.L.Warn("Failed to publish event", zap.String("type", string(e.Type)), zap.Error(err))
	}
}
