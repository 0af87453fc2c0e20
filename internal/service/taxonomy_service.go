package service

import (
	"blogs/internal/apperr"
	"blogs/internal/entity/db"
	"blogs/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// TaxonomyService 管理分类与标签。
type TaxonomyService struct {
	repo model.Repository
}

// NewTaxonomyService 创建分类标签服务实例
func NewTaxonomyService(repo model.Repository) *TaxonomyService {
	return &TaxonomyService{repo: repo}
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]db.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, storeError(err, "list categories", "", "")
	}
	return categories, nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, name string) (*db.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	category := &db.Category{Name: name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.Conflict, apperr.CodeCategoryExists, "category already exists")
		}
		return nil, storeError(err, "create category", "", "")
	}
	return category, nil
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return storeError(err, "delete category", apperr.CodeCategoryNotFound, "category not found")
	}
	return nil
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]db.Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, storeError(err, "list tags", "", "")
	}
	return tags, nil
}

func (s *TaxonomyService) CreateTag(ctx context.Context, name string) (*db.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	tag := &db.Tag{Name: name}
	if err := s.repo.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.Conflict, apperr.CodeTagExists, "tag already exists")
		}
		return nil, storeError(err, "create tag", "", "")
	}
	return tag, nil
}

func (s *TaxonomyService) DeleteTag(ctx context.Context, id uint) error {
	if err := s.repo.DeleteTag(ctx, id); err != nil {
		return storeError(err, "delete tag", apperr.CodeTagNotFound, "tag not found")
	}
	return nil
}
