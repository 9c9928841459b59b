package repository

import (
	"errors"

	"go-blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostFilter narrows a post listing. Zero fields are ignored.
type PostFilter struct {
	GroupID  uint
	AuthorID uint
	// FollowerID restricts the listing to authors this user follows.
	FollowerID uint
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Omit(clause.Associations).Create(post).Error
}

// Update writes only the given columns of post.
func (r *PostRepository) Update(post *model.Post, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(post).Omit(clause.Associations).Updates(fields).Error
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// FindByIDAndAuthor matches both the post id and its author's username.
func (r *PostRepository) FindByIDAndAuthor(id uint, username string) (*model.Post, error) {
	var post model.Post
	authorIDs := r.db.Model(&model.User{}).Select("id").Where("username = ?", username)
	err := r.db.Preload("Author").Preload("Group").
		Where("posts.id = ? AND posts.author_id = (?)", id, authorIDs).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) Count(f PostFilter) (int64, error) {
	var total int64
	err := r.filtered(f).Count(&total).Error
	return total, err
}

// List returns posts newest first; equal pub_dates keep the later insert first.
func (r *PostRepository) List(f PostFilter, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.filtered(f).
		Preload("Author").
		Preload("Group").
		Order("posts.pub_date DESC").
		Order("posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) filtered(f PostFilter) *gorm.DB {
	q := r.db.Model(&model.Post{})
	if f.GroupID != 0 {
		q = q.Where("posts.group_id = ?", f.GroupID)
	}
	if f.AuthorID != 0 {
		q = q.Where("posts.author_id = ?", f.AuthorID)
	}
	if f.FollowerID != 0 {
		following := r.db.Model(&model.Follow{}).Select("author_id").Where("user_id = ?", f.FollowerID)
		q = q.Where("posts.author_id IN (?)", following)
	}
	return q
}
