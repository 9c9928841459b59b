package repository

import (
	"errors"

	"go-blog/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.db.Create(group).Error
}

// FindBySlug returns nil, nil for an unknown slug.
func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Group{}).Count(&total).Error
	return total, err
}

// List returns groups in creation order.
func (r *GroupRepository) List(limit, offset int) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&groups).Error
	return groups, err
}

// All returns every group, used to populate the post form choices.
func (r *GroupRepository) All() ([]model.Group, error) {
	var groups []model.Group
	err := r.db.Order("title ASC").Find(&groups).Error
	return groups, err
}

// Delete removes the group. Its posts stay, with group_id set to NULL.
func (r *GroupRepository) Delete(id uint) error {
	return r.db.Delete(&model.Group{}, id).Error
}
