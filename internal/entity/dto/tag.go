package dto

import "time"

// LabelRequest is the payload for creating a category or tag.
type LabelRequest struct {
	Name string `json:"name" binding:"required"`
}

// Tag is the DTO representation of a tag.
type Tag struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Category is the DTO representation of a category.
type Category struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TagListResponse is the response for listing tags.
type TagListResponse struct {
	Tags []Tag `json:"tags"`
}

// CategoryListResponse is the response for listing categories.
type CategoryListResponse struct {
	Categories []Category `json:"categories"`
}
