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
)

// CreateUser persists a new user record.
func (r *GormRepository) CreateUser(ctx context.Context, user *db.User) error {
	if err := r.ready(); err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user is nil")
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Version == 0 {
		user.Version = 1
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// SaveUser writes every mutable field of user, guarded by its version.
func (r *GormRepository) SaveUser(ctx context.Context, user *db.User) error {
	if err := r.ready(); err != nil {
		return err
	}
	if user == nil || user.ID == 0 {
		return fmt.Errorf("invalid user")
	}
	now := time.Now()
	updates := map[string]interface{}{
		"name":                  user.Name,
		"email":                 user.Email,
		"password_hash":         user.PasswordHash,
		"role":                  user.Role,
		"bio":                   user.Bio,
		"avatar":                user.Avatar,
		"is_verified":           user.IsVerified,
		"verification_token":    user.VerificationToken,
		"verified_at":           user.VerifiedAt,
		"reset_password_token":  user.ResetPasswordToken,
		"reset_password_expire": user.ResetPasswordExpire,
		"password_changed_at":   user.PasswordChangedAt,
		"is_banned":             user.IsBanned,
		"updated_at":            now,
	}
	if err := versionedUpdate(r.db.WithContext(ctx), &db.User{}, user.ID, user.Version, updates); err != nil {
		return err
	}
	user.Version++
	user.UpdatedAt = now
	return nil
}

// GetUserByEmail loads a user by email.
func (r *GormRepository) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var user db.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(trimmed)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID loads a user by ID.
func (r *GormRepository) GetUserByID(ctx context.Context, id uint) (*db.User, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns paginated users.
func (r *GormRepository) ListUsers(ctx context.Context, params *dto.UserQuery) ([]db.User, *common.Meta, error) {
	if err := r.ready(); err != nil {
		return nil, nil, err
	}

	var page common.BaseParams
	query := r.db.WithContext(ctx).Model(&db.User{})
	if params != nil {
		page = params.BaseParams
		if trimmed := strings.TrimSpace(params.Role); trimmed != "" {
			query = query.Where("role = ?", trimmed)
		}
		if keyword := strings.TrimSpace(params.Keyword); keyword != "" {
			kw := "%" + strings.ToLower(keyword) + "%"
			query = query.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", kw, kw)
		}
	}
	page.Normalize()

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var users []db.User
	if err := query.Order("id DESC").Offset(page.Offset()).Limit(int(page.Limit)).Find(&users).Error; err != nil {
		return nil, nil, err
	}
	return users, common.NewMeta(total, page), nil
}

// DeleteUser removes a user by ID.
func (r *GormRepository) DeleteUser(ctx context.Context, id uint) error {
	if err := r.ready(); err != nil {
		return err
	}
	if id == 0 {
		return fmt.Errorf("invalid user id")
	}
	result := r.db.WithContext(ctx).Delete(&db.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountUsers returns total user count.
func (r *GormRepository) CountUsers(ctx context.Context) (int64, error) {
	if err := r.ready(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
