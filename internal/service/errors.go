package service

import "errors"

var (
	// ErrNotFound means an entity looked up by key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrFollowNotFound is returned when removing a follow that was never created.
	ErrFollowNotFound = errors.New("follow relation does not exist")
	// ErrNotAuthor means the acting user does not own the post.
	ErrNotAuthor = errors.New("only the author can edit this post")

	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSlugTaken          = errors.New("group slug already exists")

	ErrImageTooLarge = errors.New("image is too large")
	ErrImageType     = errors.New("upload a valid image")
)
