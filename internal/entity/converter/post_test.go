package converter

import (
	"testing"

	"blogs/internal/entity/common"
	"blogs/internal/entity/db"

	"github.com/stretchr/testify/assert"
)

func TestPostToDTOKeepsTagOrderAndAuthor(t *testing.T) {
	post := &db.Post{
		ID:       7,
		Title:    "Hello",
		Status:   db.PostStatusPublished,
		AuthorID: 3,
		Author:   &db.User{ID: 3, Name: "Alice", Email: "a@x.com"},
	}
	post.SetTags([]string{"go", "web", "go"})

	out := PostToDTO(post)
	assert.Equal(t, []string{"go", "web"}, out.Tags)
	if assert.NotNil(t, out.Author) {
		assert.Equal(t, "Alice", out.Author.Name)
	}
}

func TestPostToDTOWithoutAuthor(t *testing.T) {
	out := PostToDTO(&db.Post{ID: 1, AuthorID: 2})
	assert.Nil(t, out.Author)
	assert.Equal(t, []string{}, out.Tags)
}

func TestPostListResponseCopiesMeta(t *testing.T) {
	resp := PostListResponse([]db.Post{{ID: 1}}, &common.Meta{Total: 25, Page: 2, Limit: 10, Pages: 3})
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, int64(3), resp.Pages)
	assert.Len(t, resp.Posts, 1)
}
