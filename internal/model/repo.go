package model

import (
	"blogs/internal/entity/common"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
	"blogs/internal/model/sql"
	"context"
)

// ErrStaleRecord is returned by SaveUser and SavePost when the row changed
// since it was loaded.
var ErrStaleRecord = sql.ErrStaleRecord

// Repository 定义数据库操作接口
type Repository interface {
	// 用户
	CreateUser(ctx context.Context, user *db.User) error
	SaveUser(ctx context.Context, user *db.User) error
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUserByID(ctx context.Context, id uint) (*db.User, error)
	ListUsers(ctx context.Context, params *dto.UserQuery) ([]db.User, *common.Meta, error)
	DeleteUser(ctx context.Context, id uint) error
	CountUsers(ctx context.Context) (int64, error)

	// 文章
	CreatePost(ctx context.Context, post *db.Post) error
	SavePost(ctx context.Context, post *db.Post) error
	GetPost(ctx context.Context, id uint) (*db.Post, error)
	ListPosts(ctx context.Context, params *dto.PostQuery) ([]db.Post, *common.Meta, error)
	DeletePost(ctx context.Context, id uint) error

	// 评论
	CreateComment(ctx context.Context, comment *db.Comment) error
	GetComment(ctx context.Context, id uint) (*db.Comment, error)
	UpdateCommentContent(ctx context.Context, id uint, content string) error
	ListComments(ctx context.Context, postID uint) ([]db.Comment, error)
	DeleteComment(ctx context.Context, id uint) error

	// 分类和标签
	ListCategories(ctx context.Context) ([]db.Category, error)
	CreateCategory(ctx context.Context, category *db.Category) error
	DeleteCategory(ctx context.Context, id uint) error
	ListTags(ctx context.Context) ([]db.Tag, error)
	CreateTag(ctx context.Context, tag *db.Tag) error
	DeleteTag(ctx context.Context, id uint) error
}

var _ Repository = (*sql.GormRepository)(nil)
