package dto

import (
	"blogs/internal/entity/common"
	"strings"
	"time"
)

const (
	PostSortLatest  = "latest"
	PostSortOldest  = "oldest"
	PostSortUpdated = "updated"
)

// PostQuery holds listing filters. Tags is a comma-separated list.
type PostQuery struct {
	common.BaseParams
	Category string `form:"category"`
	Status   string `form:"status"`
	Author   uint   `form:"author"`
	Tags     string `form:"tags"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

// TagList splits Tags on commas, dropping blanks.
func (q PostQuery) TagList() []string {
	return SplitList(q.Tags)
}

// PostInput is the create/update payload. Pointer fields distinguish an
// omitted field from an empty one on update.
type PostInput struct {
	Title    *string
	Content  *string
	Category *string
	Status   *string
	Tags     []string
	TagsSet  bool
}

// Post is the client representation of a post.
type Post struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Content   string         `json:"content"`
	Category  string         `json:"category"`
	Tags      []string       `json:"tags"`
	Image     string         `json:"image,omitempty"`
	Status    string         `json:"status"`
	Author    *AuthorSummary `json:"author,omitempty"`
	AuthorID  uint           `json:"author_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// PostListResponse is the paginated post listing.
type PostListResponse struct {
	Total int64  `json:"total"`
	Page  int64  `json:"page"`
	Pages int64  `json:"pages"`
	Posts []Post `json:"posts"`
}

// PostDetailResponse wraps a single post.
type PostDetailResponse struct {
	Post Post `json:"post"`
}

// SplitList splits a comma-separated value into trimmed, non-empty parts.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
