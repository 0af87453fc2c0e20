package api

import (
	"blogs/internal/entity/converter"
	"blogs/internal/entity/dto"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	comment, err := h.content.CreateComment(ctx, CurrentUser(c), postID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": converter.CommentToDTO(comment)})
}

func (h *HTTPHandler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	comments, err := h.content.ListComments(ctx, CurrentUser(c), postID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentListResponse{Comments: converter.CommentsToDTOs(comments)})
}

func (h *HTTPHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	comment, err := h.content.UpdateComment(ctx, CurrentUser(c), id, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": converter.CommentToDTO(comment)})
}

func (h *HTTPHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.content.DeleteComment(ctx, CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "comment deleted"})
}
