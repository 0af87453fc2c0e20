package db

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post is a blog article owned by its author.
type Post struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`

	Title    string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug     string `gorm:"column:slug;type:varchar(255);index" json:"slug"`
	Content  string `gorm:"column:content;type:text" json:"content"`
	Category string `gorm:"column:category;type:varchar(128);index" json:"category"`
	Image    string `gorm:"column:image;type:varchar(1024)" json:"image"`
	Status   string `gorm:"column:status;type:varchar(32);index;not null" json:"status"`

	AuthorID uint  `gorm:"column:author_id;index;not null" json:"author_id"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"-"`

	Tags    []PostTag `gorm:"foreignKey:PostID" json:"-"`
	Version uint      `gorm:"column:version;not null" json:"-"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// TagNames returns the post's tags in their stored order.
func (p *Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// SetTags replaces the post's tags, dropping blanks and duplicates while
// keeping the first occurrence order.
func (p *Post) SetTags(names []string) {
	p.Tags = BuildPostTags(p.ID, names)
}

// OwnedBy reports whether userID authored the post.
func (p *Post) OwnedBy(userID uint) bool {
	return p != nil && p.AuthorID == userID
}

// ValidPostStatus reports whether status is draft or published.
func ValidPostStatus(status string) bool {
	return status == PostStatusDraft || status == PostStatusPublished
}

// PostTag 文章与标签名的有序关联。
type PostTag struct {
	PostID   uint   `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	Name     string `gorm:"primaryKey;type:varchar(64)" json:"name"`
	Position int    `gorm:"column:position;not null" json:"position"`
}

// TableName 指定表名
func (PostTag) TableName() string {
	return "post_tags"
}
