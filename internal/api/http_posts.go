package api

import (
	"blogs/internal/apperr"
	"blogs/internal/entity/common"
	"blogs/internal/entity/converter"
	"blogs/internal/entity/dto"
	"net/http"

	"github.com/gin-gonic/gin"
)

// postPayload is the JSON form of a post. Tags may be an array or a
// comma-separated string.
type postPayload struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
	Tags     any     `json:"tags"`
}

func (p postPayload) input() (dto.PostInput, error) {
	input := dto.PostInput{
		Title:    p.Title,
		Content:  p.Content,
		Category: p.Category,
		Status:   p.Status,
	}
	switch tags := p.Tags.(type) {
	case nil:
	case string:
		input.Tags, input.TagsSet = dto.SplitList(tags), true
	case []any:
		input.TagsSet = true
		input.Tags = make([]string, 0, len(tags))
		for _, tag := range tags {
			name, ok := tag.(string)
			if !ok {
				return dto.PostInput{}, apperr.New(apperr.Invalid, apperr.CodeInvalidRequest, "tags must be strings")
			}
			input.Tags = append(input.Tags, name)
		}
	default:
		return dto.PostInput{}, apperr.New(apperr.Invalid, apperr.CodeInvalidRequest, "tags must be a list or a comma-separated string")
	}
	return input, nil
}

func formValue(c *gin.Context, key string) *string {
	value, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &value
}

// bindPostInput reads a post from a multipart form or a JSON body.
func (h *HTTPHandler) bindPostInput(c *gin.Context) (dto.PostInput, bool) {
	if isMultipart(c) {
		input := dto.PostInput{
			Title:    formValue(c, "title"),
			Content:  formValue(c, "content"),
			Category: formValue(c, "category"),
			Status:   formValue(c, "status"),
		}
		if values, ok := c.GetPostFormArray("tags"); ok {
			input.TagsSet = true
			input.Tags = []string{}
			for _, value := range values {
				input.Tags = append(input.Tags, dto.SplitList(value)...)
			}
		}
		return input, true
	}

	var payload postPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return dto.PostInput{}, false
	}
	input, err := payload.input()
	if err != nil {
		fail(c, err)
		return dto.PostInput{}, false
	}
	return input, true
}

func (h *HTTPHandler) CreatePost(c *gin.Context) {
	input, ok := h.bindPostInput(c)
	if !ok {
		return
	}
	upload, err := h.readUpload(c)
	if err != nil {
		fail(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.content.CreatePost(ctx, CurrentUser(c), input, upload)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PostDetailResponse{Post: converter.PostToDTO(post)})
}

func (h *HTTPHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	input, ok := h.bindPostInput(c)
	if !ok {
		return
	}
	upload, err := h.readUpload(c)
	if err != nil {
		fail(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.content.UpdatePost(ctx, CurrentUser(c), id, input, upload)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PostDetailResponse{Post: converter.PostToDTO(post)})
}

func (h *HTTPHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.content.DeletePost(ctx, CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "post deleted"})
}

func (h *HTTPHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.content.GetPost(ctx, CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PostDetailResponse{Post: converter.PostToDTO(post)})
}

func (h *HTTPHandler) ListPosts(c *gin.Context) {
	var query dto.PostQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, meta, err := h.content.ListPosts(ctx, CurrentUser(c), query)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, converter.PostListResponse(posts, meta))
}

func (h *HTTPHandler) ListUserPosts(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var query dto.PostQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, meta, err := h.content.ListUserPosts(ctx, CurrentUser(c), userID, query)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, converter.PostListResponse(posts, meta))
}

func (h *HTTPHandler) ListDrafts(c *gin.Context) {
	var params common.BaseParams
	if err := c.ShouldBindQuery(&params); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, meta, err := h.content.ListDrafts(ctx, CurrentUser(c), params)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, converter.PostListResponse(posts, meta))
}
