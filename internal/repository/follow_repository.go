package repository

import (
	"go-blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Exists(userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

// CreateIfAbsent inserts the (user, author) pair unless it already exists and
// returns the stored row. A concurrent duplicate insert is absorbed by the
// unique index instead of failing.
func (r *FollowRepository) CreateIfAbsent(userID, authorID uint) (*model.Follow, bool, error) {
	follow := &model.Follow{UserID: userID, AuthorID: authorID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow)
	if res.Error != nil {
		return nil, false, res.Error
	}
	created := res.RowsAffected > 0

	var stored model.Follow
	if err := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).First(&stored).Error; err != nil {
		return nil, false, err
	}
	return &stored, created, nil
}

// Delete removes the pair in one statement and reports whether a row was removed.
func (r *FollowRepository) Delete(userID, authorID uint) (bool, error) {
	res := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&model.Follow{})
	return res.RowsAffected > 0, res.Error
}

func (r *FollowRepository) CountFollowers(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *FollowRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
