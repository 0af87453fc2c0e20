package service

import (
	"blogs/internal/apperr"
	"blogs/internal/entity/common"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
	"blogs/internal/model"
	"context"

	"github.com/sirupsen/logrus"
)

// AdminService 提供用户管理与内容审核操作，调用方必须是管理员。
type AdminService struct {
	repo    model.Repository
	content *ContentService
}

// NewAdminService 创建管理服务实例
func NewAdminService(repo model.Repository, content *ContentService) *AdminService {
	return &AdminService{repo: repo, content: content}
}

func requireAdmin(caller *db.User) error {
	if !caller.IsAdmin() {
		return apperr.New(apperr.Forbidden, apperr.CodeAdminOnly, "admin access required")
	}
	return nil
}

// ListUsers returns users page by page.
func (s *AdminService) ListUsers(ctx context.Context, caller *db.User, query dto.UserQuery) ([]db.User, *common.Meta, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, nil, err
	}
	users, meta, err := s.repo.ListUsers(ctx, &query)
	if err != nil {
		return nil, nil, storeError(err, "list users", "", "")
	}
	return users, meta, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (s *AdminService) DeleteUser(ctx context.Context, caller *db.User, id uint) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if caller.ID == id {
		return apperr.New(apperr.Invalid, apperr.CodeCannotSelf, "cannot delete your own account")
	}
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return storeError(err, "delete user", apperr.CodeUserNotFound, "user not found")
	}
	logrus.WithFields(logrus.Fields{"admin_id": caller.ID, "user_id": id}).Info("user deleted")
	return nil
}

// MakeAdmin grants the admin role. There is no demotion.
func (s *AdminService) MakeAdmin(ctx context.Context, caller *db.User, id uint) (*db.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	target, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "load user", apperr.CodeUserNotFound, "user not found")
	}
	if !target.PromoteToAdmin() {
		return target, nil
	}
	if err := s.repo.SaveUser(ctx, target); err != nil {
		return nil, storeError(err, "save user", apperr.CodeUserNotFound, "user not found")
	}
	logrus.WithFields(logrus.Fields{"admin_id": caller.ID, "user_id": id}).Info("user promoted to admin")
	return target, nil
}

// ToggleBan inverts the banned flag of a user. Admins cannot ban themselves.
func (s *AdminService) ToggleBan(ctx context.Context, caller *db.User, id uint) (*db.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if caller.ID == id {
		return nil, apperr.New(apperr.Invalid, apperr.CodeCannotSelf, "cannot ban your own account")
	}
	target, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "load user", apperr.CodeUserNotFound, "user not found")
	}
	target.IsBanned = !target.IsBanned
	if err := s.repo.SaveUser(ctx, target); err != nil {
		return nil, storeError(err, "save user", apperr.CodeUserNotFound, "user not found")
	}
	logrus.WithFields(logrus.Fields{"admin_id": caller.ID, "user_id": id, "banned": target.IsBanned}).Info("user ban toggled")
	return target, nil
}

// ListPosts returns every post, drafts included.
func (s *AdminService) ListPosts(ctx context.Context, caller *db.User, query dto.PostQuery) ([]db.Post, *common.Meta, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, nil, err
	}
	return s.content.ListAllPosts(ctx, query)
}

// DeletePost removes any post.
func (s *AdminService) DeletePost(ctx context.Context, caller *db.User, id uint) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	return s.content.DeletePost(ctx, caller, id)
}
