package converter

import (
	"blogs/internal/entity/common"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
)

// PostToDTO converts a db.Post to dto.Post.
func PostToDTO(p *db.Post) dto.Post {
	if p == nil {
		return dto.Post{}
	}
	return dto.Post{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		Category:  p.Category,
		Tags:      p.TagNames(),
		Image:     p.Image,
		Status:    p.Status,
		Author:    UserToAuthor(p.Author),
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PostsToDTOs converts a slice of db.Post to dto.Post.
func PostsToDTOs(posts []db.Post) []dto.Post {
	out := make([]dto.Post, len(posts))
	for i := range posts {
		out[i] = PostToDTO(&posts[i])
	}
	return out
}

// PostListResponse builds the paginated listing body.
func PostListResponse(posts []db.Post, meta *common.Meta) dto.PostListResponse {
	resp := dto.PostListResponse{Posts: PostsToDTOs(posts)}
	if meta != nil {
		resp.Total = meta.Total
		resp.Page = meta.Page
		resp.Pages = meta.Pages
	}
	return resp
}
