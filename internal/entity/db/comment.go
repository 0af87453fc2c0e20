package db

import "time"

// Comment 表示文章下的评论。
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PostID  uint   `gorm:"column:post_id;index;not null" json:"post_id"`
	UserID  uint   `gorm:"column:user_id;index;not null" json:"user_id"`
	User    *User  `gorm:"foreignKey:UserID" json:"-"`
	Content string `gorm:"column:content;type:text;not null" json:"content"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}

// OwnedBy reports whether userID wrote the comment.
func (c *Comment) OwnedBy(userID uint) bool {
	return c != nil && c.UserID == userID
}
