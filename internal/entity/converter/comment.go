package converter

import (
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
)

// CommentToDTO converts a db.Comment to dto.Comment.
func CommentToDTO(c *db.Comment) dto.Comment {
	if c == nil {
		return dto.Comment{}
	}
	return dto.Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		User:      UserToAuthor(c.User),
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CommentsToDTOs converts a slice of db.Comment to dto.Comment.
func CommentsToDTOs(comments []db.Comment) []dto.Comment {
	out := make([]dto.Comment, len(comments))
	for i := range comments {
		out[i] = CommentToDTO(&comments[i])
	}
	return out
}
