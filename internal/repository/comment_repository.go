package repository

import (
	"go-blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Omit(clause.Associations).Create(comment).Error
}

// FindByPost returns the comments of a post, newest first.
func (r *CommentRepository) FindByPost(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("post_id = ?", postID).
		Preload("Author").
		Order("created DESC").
		Order("id DESC").
		Find(&comments).Error
	return comments, err
}
