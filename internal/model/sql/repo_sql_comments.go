package sql

import (
	"blogs/internal/entity/db"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// CreateComment persists a new comment.
func (r *GormRepository) CreateComment(ctx context.Context, comment *db.Comment) error {
	if err := r.ready(); err != nil {
		return err
	}
	if comment == nil {
		return fmt.Errorf("comment is nil")
	}
	return r.db.WithContext(ctx).Omit("User").Create(comment).Error
}

// GetComment loads a comment with its author.
func (r *GormRepository) GetComment(ctx context.Context, id uint) (*db.Comment, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var comment db.Comment
	if err := r.db.WithContext(ctx).Preload("User", authorColumns).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateCommentContent replaces the text of a comment.
func (r *GormRepository) UpdateCommentContent(ctx context.Context, id uint, content string) error {
	if err := r.ready(); err != nil {
		return err
	}
	if id == 0 {
		return fmt.Errorf("invalid comment id")
	}
	result := r.db.WithContext(ctx).Model(&db.Comment{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListComments returns the comments of a post, oldest first.
func (r *GormRepository) ListComments(ctx context.Context, postID uint) ([]db.Comment, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var comments []db.Comment
	err := r.db.WithContext(ctx).
		Preload("User", authorColumns).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a comment by ID.
func (r *GormRepository) DeleteComment(ctx context.Context, id uint) error {
	if err := r.ready(); err != nil {
		return err
	}
	if id == 0 {
		return fmt.Errorf("invalid comment id")
	}
	result := r.db.WithContext(ctx).Delete(&db.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
