package service

import (
	"blogs/internal/apperr"
	"blogs/internal/auth"
	"blogs/internal/entity/common"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
	"blogs/internal/model"
	"blogs/internal/storage"
	"blogs/internal/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	imageCategory      = "posts"
	maxPromoteAttempts = 3
)

// Upload is an image attached to a post create or update.
type Upload struct {
	Filename string
	Data     []byte
}

// ContentService 管理文章与评论，负责所有权校验与图片存储。
type ContentService struct {
	repo       model.Repository
	storage    storage.Storage
	publicBase string
}

// NewContentService 创建内容服务实例
func NewContentService(repo model.Repository, store storage.Storage, publicBase string) *ContentService {
	return &ContentService{
		repo:       repo,
		storage:    store,
		publicBase: strings.TrimRight(strings.TrimSpace(publicBase), "/"),
	}
}

// ImageURL returns the public URL for a storage key.
func (s *ContentService) ImageURL(key string) string {
	if s.publicBase == "" {
		return key
	}
	return s.publicBase + "/" + strings.TrimLeft(key, "/")
}

// CreatePost stores a post owned by caller. A reader who publishes their
// first post becomes an author.
func (s *ContentService) CreatePost(ctx context.Context, caller *db.User, input dto.PostInput, image *Upload) (*db.Post, error) {
	if caller == nil {
		return nil, apperr.New(apperr.Unauthenticated, apperr.CodeNoSession, "no session")
	}
	post := &db.Post{AuthorID: caller.ID, Status: db.PostStatusPublished}
	if err := applyPostInput(post, input); err != nil {
		return nil, err
	}
	if post.Title == "" || post.Content == "" {
		return nil, invalid("title and content are required")
	}

	if image != nil {
		url, err := s.saveImage(ctx, image)
		if err != nil {
			return nil, err
		}
		post.Image = url
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		s.removeImage(ctx, post.Image)
		return nil, storeError(err, "create post", "", "")
	}

	if err := s.promoteAuthor(ctx, caller); err != nil {
		logrus.WithError(err).WithField("user_id", caller.ID).Error("failed to promote reader to author")
	}

	logrus.WithFields(logrus.Fields{"post_id": post.ID, "author_id": caller.ID}).Info("post created")
	return s.reloadPost(ctx, post.ID)
}

// promoteAuthor applies the reader to author transition on the stored user,
// retrying when a concurrent write bumped the version.
func (s *ContentService) promoteAuthor(ctx context.Context, caller *db.User) error {
	for attempt := 0; attempt < maxPromoteAttempts; attempt++ {
		user, err := s.repo.GetUserByID(ctx, caller.ID)
		if err != nil {
			return err
		}
		if !user.PromoteToAuthor() {
			caller.Role = user.Role
			return nil
		}
		err = s.repo.SaveUser(ctx, user)
		if errors.Is(err, model.ErrStaleRecord) {
			continue
		}
		if err != nil {
			return err
		}
		caller.Role = user.Role
		caller.Version = user.Version
		return nil
	}
	return model.ErrStaleRecord
}

// UpdatePost changes a post owned by caller, or any post when caller is admin.
func (s *ContentService) UpdatePost(ctx context.Context, caller *db.User, id uint, input dto.PostInput, image *Upload) (*db.Post, error) {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, storeError(err, "load post", apperr.CodePostNotFound, "post not found")
	}
	if !auth.CanModify(caller, post.AuthorID) {
		return nil, notAuthorized()
	}
	if err := applyPostInput(post, input); err != nil {
		return nil, err
	}
	if post.Title == "" || post.Content == "" {
		return nil, invalid("title and content must not be empty")
	}

	oldImage := post.Image
	if image != nil {
		url, err := s.saveImage(ctx, image)
		if err != nil {
			return nil, err
		}
		post.Image = url
	}

	if err := s.repo.SavePost(ctx, post); err != nil {
		if image != nil {
			s.removeImage(ctx, post.Image)
		}
		return nil, storeError(err, "save post", apperr.CodePostNotFound, "post not found")
	}
	if image != nil && oldImage != "" {
		s.removeImage(ctx, oldImage)
	}
	return s.reloadPost(ctx, post.ID)
}

// DeletePost removes a post with its comments and image.
func (s *ContentService) DeletePost(ctx context.Context, caller *db.User, id uint) error {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return storeError(err, "load post", apperr.CodePostNotFound, "post not found")
	}
	if !auth.CanModify(caller, post.AuthorID) {
		return notAuthorized()
	}
	if err := s.repo.DeletePost(ctx, id); err != nil {
		return storeError(err, "delete post", apperr.CodePostNotFound, "post not found")
	}
	s.removeImage(ctx, post.Image)
	logrus.WithFields(logrus.Fields{"post_id": id, "user_id": caller.ID}).Info("post deleted")
	return nil
}

// GetPost returns a post. Drafts are only visible to their author and admins.
func (s *ContentService) GetPost(ctx context.Context, viewer *db.User, id uint) (*db.Post, error) {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, storeError(err, "load post", apperr.CodePostNotFound, "post not found")
	}
	if post.Status == db.PostStatusDraft && !auth.CanModify(viewer, post.AuthorID) {
		return nil, apperr.New(apperr.NotFound, apperr.CodePostNotFound, "post not found")
	}
	return post, nil
}

// ListPosts is the public listing. Without a status filter only published
// posts are returned; drafts are limited to the viewer's own unless the
// viewer is an admin.
func (s *ContentService) ListPosts(ctx context.Context, viewer *db.User, query dto.PostQuery) ([]db.Post, *common.Meta, error) {
	query.Status = strings.ToLower(strings.TrimSpace(query.Status))
	switch query.Status {
	case "":
		query.Status = db.PostStatusPublished
	case db.PostStatusPublished:
	case db.PostStatusDraft:
		if !viewer.IsAdmin() {
			if viewer == nil {
				query.BaseParams.Normalize()
				return []db.Post{}, common.NewMeta(0, query.BaseParams), nil
			}
			query.Author = viewer.ID
		}
	default:
		return nil, nil, invalid("status must be draft or published")
	}
	return s.listPosts(ctx, query)
}

// ListUserPosts lists the posts of userID. Callers other than the user need
// the admin role.
func (s *ContentService) ListUserPosts(ctx context.Context, caller *db.User, userID uint, query dto.PostQuery) ([]db.Post, *common.Meta, error) {
	if !auth.CanModify(caller, userID) {
		return nil, nil, notAuthorized()
	}
	query.Status = strings.ToLower(strings.TrimSpace(query.Status))
	if query.Status != "" && !db.ValidPostStatus(query.Status) {
		return nil, nil, invalid("status must be draft or published")
	}
	query.Author = userID
	if query.Sort == "" {
		query.Sort = dto.PostSortLatest
	}
	return s.listPosts(ctx, query)
}

// ListDrafts returns the caller's drafts, newest first.
func (s *ContentService) ListDrafts(ctx context.Context, caller *db.User, params common.BaseParams) ([]db.Post, *common.Meta, error) {
	if caller == nil {
		return nil, nil, apperr.New(apperr.Unauthenticated, apperr.CodeNoSession, "no session")
	}
	return s.listPosts(ctx, dto.PostQuery{
		BaseParams: params,
		Status:     db.PostStatusDraft,
		Author:     caller.ID,
		Sort:       dto.PostSortLatest,
	})
}

// ListAllPosts returns every post regardless of status, for moderation.
func (s *ContentService) ListAllPosts(ctx context.Context, query dto.PostQuery) ([]db.Post, *common.Meta, error) {
	if query.Sort == "" {
		query.Sort = dto.PostSortLatest
	}
	return s.listPosts(ctx, query)
}

func (s *ContentService) listPosts(ctx context.Context, query dto.PostQuery) ([]db.Post, *common.Meta, error) {
	posts, meta, err := s.repo.ListPosts(ctx, &query)
	if err != nil {
		return nil, nil, storeError(err, "list posts", "", "")
	}
	return posts, meta, nil
}

func (s *ContentService) reloadPost(ctx context.Context, id uint) (*db.Post, error) {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, storeError(err, "reload post", apperr.CodePostNotFound, "post not found")
	}
	return post, nil
}

func applyPostInput(post *db.Post, input dto.PostInput) error {
	if input.Title != nil {
		post.Title = strings.TrimSpace(*input.Title)
		post.Slug = utils.Slugify(post.Title)
	}
	if input.Content != nil {
		post.Content = utils.SanitizeHTML(*input.Content)
	}
	if input.Category != nil {
		post.Category = strings.TrimSpace(*input.Category)
	}
	if input.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*input.Status))
		if status != "" {
			if !db.ValidPostStatus(status) {
				return invalid("status must be draft or published")
			}
			post.Status = status
		}
	}
	if input.TagsSet {
		post.SetTags(input.Tags)
	}
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}
	return nil
}

func (s *ContentService) saveImage(ctx context.Context, image *Upload) (string, error) {
	if s.storage == nil {
		return "", apperr.New(apperr.Unavailable, apperr.CodeInvalidImage, "image storage is not configured")
	}
	mimeType, ext, err := utils.DetectImage(image.Data)
	if err != nil {
		return "", apperr.Wrap(err, apperr.Invalid, apperr.CodeInvalidImage, "image must be a png, jpeg, gif or webp file")
	}
	key, err := s.storage.Save(ctx, image.Data, storage.SaveOptions{
		Category:    imageCategory,
		BaseName:    uuid.NewString(),
		Extension:   ext,
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return s.ImageURL(key), nil
}

// removeImage deletes an image previously saved by this service. Failures
// are logged only.
func (s *ContentService) removeImage(ctx context.Context, url string) {
	if url == "" || s.storage == nil {
		return
	}
	key, ok := storage.KeyFromURL(s.publicBase, url)
	if !ok {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to delete image")
	}
}

// CreateComment adds a comment by caller to a visible post.
func (s *ContentService) CreateComment(ctx context.Context, caller *db.User, postID uint, content string) (*db.Comment, error) {
	if caller == nil {
		return nil, apperr.New(apperr.Unauthenticated, apperr.CodeNoSession, "no session")
	}
	if _, err := s.GetPost(ctx, caller, postID); err != nil {
		return nil, err
	}
	body := utils.SanitizeHTML(content)
	if body == "" {
		return nil, invalid("content is required")
	}
	comment := &db.Comment{PostID: postID, UserID: caller.ID, Content: body}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, storeError(err, "create comment", "", "")
	}
	return s.reloadComment(ctx, comment.ID)
}

// ListComments returns a post's comments, oldest first.
func (s *ContentService) ListComments(ctx context.Context, viewer *db.User, postID uint) ([]db.Comment, error) {
	if _, err := s.GetPost(ctx, viewer, postID); err != nil {
		return nil, err
	}
	comments, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, storeError(err, "list comments", "", "")
	}
	return comments, nil
}

// UpdateComment edits a comment owned by caller, or any comment for admins.
func (s *ContentService) UpdateComment(ctx context.Context, caller *db.User, id uint, content string) (*db.Comment, error) {
	comment, err := s.repo.GetComment(ctx, id)
	if err != nil {
		return nil, storeError(err, "load comment", apperr.CodeCommentNotFound, "comment not found")
	}
	if !auth.CanModify(caller, comment.UserID) {
		return nil, notAuthorized()
	}
	body := utils.SanitizeHTML(content)
	if body == "" {
		return nil, invalid("content is required")
	}
	if err := s.repo.UpdateCommentContent(ctx, id, body); err != nil {
		return nil, storeError(err, "update comment", apperr.CodeCommentNotFound, "comment not found")
	}
	return s.reloadComment(ctx, id)
}

// DeleteComment removes a comment owned by caller, or any comment for admins.
func (s *ContentService) DeleteComment(ctx context.Context, caller *db.User, id uint) error {
	comment, err := s.repo.GetComment(ctx, id)
	if err != nil {
		return storeError(err, "load comment", apperr.CodeCommentNotFound, "comment not found")
	}
	if !auth.CanModify(caller, comment.UserID) {
		return notAuthorized()
	}
	if err := s.repo.DeleteComment(ctx, id); err != nil {
		return storeError(err, "delete comment", apperr.CodeCommentNotFound, "comment not found")
	}
	return nil
}

func (s *ContentService) reloadComment(ctx context.Context, id uint) (*db.Comment, error) {
	comment, err := s.repo.GetComment(ctx, id)
	if err != nil {
		return nil, storeError(err, "reload comment", apperr.CodeCommentNotFound, "comment not found")
	}
	return comment, nil
}
