package sql

import (
	"blogs/internal/entity/db"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ListTags returns all tags ordered by name.
func (r *GormRepository) ListTags(ctx context.Context) ([]db.Tag, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var tags []db.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag inserts a new tag. A duplicate name yields gorm.ErrDuplicatedKey.
func (r *GormRepository) CreateTag(ctx context.Context, tag *db.Tag) error {
	if err := r.ready(); err != nil {
		return err
	}
	if tag == nil {
		return fmt.Errorf("tag is nil")
	}
	tag.Name = strings.TrimSpace(tag.Name)
	if err := r.nameTaken(ctx, &db.Tag{}, tag.Name); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(tag).Error
}

// DeleteTag removes a tag. Posts keep the tag name.
func (r *GormRepository) DeleteTag(ctx context.Context, id uint) error {
	if err := r.ready(); err != nil {
		return err
	}
	if id == 0 {
		return fmt.Errorf("invalid tag id")
	}
	result := r.db.WithContext(ctx).Delete(&db.Tag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (r *GormRepository) ListCategories(ctx context.Context) ([]db.Category, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var categories []db.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a new category. A duplicate name yields
// gorm.ErrDuplicatedKey.
func (r *GormRepository) CreateCategory(ctx context.Context, category *db.Category) error {
	if err := r.ready(); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category is nil")
	}
	category.Name = strings.TrimSpace(category.Name)
	if err := r.nameTaken(ctx, &db.Category{}, category.Name); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(category).Error
}

// DeleteCategory removes a category. Posts keep the category name.
func (r *GormRepository) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.ready(); err != nil {
		return err
	}
	if id == 0 {
		return fmt.Errorf("invalid category id")
	}
	result := r.db.WithContext(ctx).Delete(&db.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// nameTaken reports gorm.ErrDuplicatedKey when a label with name exists. The
// unique index still guards concurrent inserts.
func (r *GormRepository) nameTaken(ctx context.Context, model interface{}, name string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("name = ?", name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}
