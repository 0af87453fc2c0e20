package sql

import (
	"blogs/internal/entity/common"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreatePost inserts a post together with its tags.
func (r *GormRepository) CreatePost(ctx context.Context, post *db.Post) error {
	if err := r.ready(); err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post is nil")
	}
	if post.Version == 0 {
		post.Version = 1
	}
	names := post.TagNames()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		tags, err := replacePostTags(tx, post.ID, names)
		if err != nil {
			return err
		}
		post.Tags = tags
		return nil
	})
}

// SavePost writes the post's mutable fields and tags, guarded by its version.
func (r *GormRepository) SavePost(ctx context.Context, post *db.Post) error {
	if err := r.ready(); err != nil {
		return err
	}
	if post == nil || post.ID == 0 {
		return fmt.Errorf("invalid post")
	}
	now := time.Now()
	names := post.TagNames()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":      post.Title,
			"slug":       post.Slug,
			"content":    post.Content,
			"category":   post.Category,
			"image":      post.Image,
			"status":     post.Status,
			"updated_at": now,
		}
		if err := versionedUpdate(tx, &db.Post{}, post.ID, post.Version, updates); err != nil {
			return err
		}
		tags, err := replacePostTags(tx, post.ID, names)
		if err != nil {
			return err
		}
		post.Tags = tags
		return nil
	})
	if err != nil {
		return err
	}
	post.Version++
	post.UpdatedAt = now
	return nil
}

func replacePostTags(tx *gorm.DB, postID uint, names []string) ([]db.PostTag, error) {
	if err := tx.Where("post_id = ?", postID).Delete(&db.PostTag{}).Error; err != nil {
		return nil, err
	}
	tags := db.BuildPostTags(postID, names)
	if len(tags) == 0 {
		return tags, nil
	}
	if err := tx.Create(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func preloadPost(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author", authorColumns).
		Preload("Tags", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") })
}

// GetPost loads a post with its author and tags.
func (r *GormRepository) GetPost(ctx context.Context, id uint) (*db.Post, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var post db.Post
	if err := preloadPost(r.db.WithContext(ctx)).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns posts matching params. Tags match when the post carries
// any of the requested names.
func (r *GormRepository) ListPosts(ctx context.Context, params *dto.PostQuery) ([]db.Post, *common.Meta, error) {
	if err := r.ready(); err != nil {
		return nil, nil, err
	}
	if params == nil {
		params = &dto.PostQuery{}
	}
	page := params.BaseParams
	page.Normalize()

	base := r.db.WithContext(ctx)
	query := base.Model(&db.Post{})
	if category := strings.TrimSpace(params.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := strings.TrimSpace(params.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if params.Author != 0 {
		query = query.Where("author_id = ?", params.Author)
	}
	if tags := params.TagList(); len(tags) > 0 {
		sub := base.Model(&db.PostTag{}).Select("post_id").Where("name IN ?", tags)
		query = query.Where("id IN (?)", sub)
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var posts []db.Post
	err := preloadPost(query).
		Order(postOrder(params.Sort)).
		Offset(page.Offset()).
		Limit(int(page.Limit)).
		Find(&posts).Error
	if err != nil {
		return nil, nil, err
	}
	return posts, common.NewMeta(total, page), nil
}

func postOrder(sort string) string {
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case dto.PostSortLatest:
		return "created_at DESC, id DESC"
	case dto.PostSortOldest:
		return "created_at ASC, id ASC"
	case dto.PostSortUpdated:
		return "updated_at DESC, id DESC"
	default:
		return "id ASC"
	}
}

// DeletePost removes a post with its tags and comments.
func (r *GormRepository) DeletePost(ctx context.Context, id uint) error {
	if err := r.ready(); err != nil {
		return err
	}
	if id == 0 {
		return fmt.Errorf("invalid post id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&db.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&db.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&db.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
