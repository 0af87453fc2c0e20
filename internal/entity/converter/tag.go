package converter

import (
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
)

// TagsToDTOs converts db tags to DTOs.
func TagsToDTOs(tags []db.Tag) []dto.Tag {
	out := make([]dto.Tag, len(tags))
	for i, t := range tags {
		out[i] = dto.Tag{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
	}
	return out
}

// CategoriesToDTOs converts db categories to DTOs.
func CategoriesToDTOs(categories []db.Category) []dto.Category {
	out := make([]dto.Category, len(categories))
	for i, c := range categories {
		out[i] = dto.Category{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
	}
	return out
}
