package model

import (
	"blogs/internal/auth"
	"blogs/internal/config"
	"blogs/internal/entity/db"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedAdmin ensures the bootstrap admin from configuration exists. An existing
// account with that email is promoted; its password is left untouched.
func SeedAdmin(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(cfg.BootstrapAdminEmail))
	if email == "" {
		return nil
	}

	existing, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if !existing.PromoteToAdmin() {
			return nil
		}
		if err := repo.SaveUser(ctx, existing); err != nil {
			return err
		}
		logrus.WithField("user_id", existing.ID).Info("bootstrap admin promoted")
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if strings.TrimSpace(cfg.BootstrapAdminPassword) == "" {
		return errors.New("ADMIN_PASSWORD is required to create the bootstrap admin")
	}
	hash, err := auth.HashPassword(cfg.BootstrapAdminPassword)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(cfg.BootstrapAdminName)
	if name == "" {
		name = "Administrator"
	}
	now := time.Now()
	admin := &db.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         db.UserRoleAdmin,
		IsVerified:   true,
		VerifiedAt:   &now,
	}
	if err := repo.CreateUser(ctx, admin); err != nil {
		return err
	}
	logrus.WithField("user_id", admin.ID).Info("bootstrap admin created")
	return nil
}
