package sql

import (
	"blogs/internal/entity/db"
	"errors"

	"gorm.io/gorm"
)

// ErrStaleRecord reports a failed optimistic-concurrency update.
var ErrStaleRecord = errors.New("record was modified concurrently")

var errNotInitialised = errors.New("repository not initialised")

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ready() error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	return nil
}

// AutoMigrate 迁移数据库表结构
func AutoMigrate(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&db.User{},
		&db.Post{},
		&db.PostTag{},
		&db.Comment{},
		&db.Category{},
		&db.Tag{},
	)
}

// authorColumns limits preloaded users to their public fields.
func authorColumns(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "name", "avatar", "bio")
}

// versionedUpdate applies updates when the row still has the expected version.
// Zero rows affected means either the row is gone or it moved on.
func versionedUpdate(tx *gorm.DB, model interface{}, id, version uint, updates map[string]interface{}) error {
	updates["version"] = version + 1
	result := tx.Model(model).Where("id = ? AND version = ?", id, version).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrStaleRecord
}
