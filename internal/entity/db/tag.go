package db

import (
	"strings"
	"time"
)

// Tag 表示管理员维护的标签。
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// Category 表示管理员维护的文章分类。
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"size:128;uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// BuildPostTags converts raw tag names into ordered PostTag rows.
func BuildPostTags(postID uint, names []string) []PostTag {
	tags := make([]PostTag, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		tags = append(tags, PostTag{PostID: postID, Name: name, Position: len(tags)})
	}
	return tags
}
