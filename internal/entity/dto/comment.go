package dto

import "time"

// CommentRequest is the create/update payload for comments.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Comment is the client representation of a comment.
type Comment struct {
	ID        uint           `json:"id"`
	PostID    uint           `json:"post_id"`
	Content   string         `json:"content"`
	User      *AuthorSummary `json:"user,omitempty"`
	UserID    uint           `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CommentListResponse lists the comments of one post.
type CommentListResponse struct {
	Comments []Comment `json:"comments"`
}
