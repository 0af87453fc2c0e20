package api

import (
	"blogs/internal/entity/converter"
	"blogs/internal/entity/dto"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListUsers(c *gin.Context) {
	var query dto.UserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, meta, err := h.admin.ListUsers(ctx, CurrentUser(c), query)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: converter.UsersToSummaries(users),
		Meta:  meta,
	})
}

func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.admin.DeleteUser(ctx, CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted"})
}

func (h *HTTPHandler) MakeAdmin(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.admin.MakeAdmin(ctx, CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "user promoted to admin",
		"user":    converter.UserToSummary(user),
	})
}

func (h *HTTPHandler) ToggleBan(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.admin.ToggleBan(ctx, CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	message := "user unbanned"
	if user.IsBanned {
		message = "user banned"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user":    converter.UserToSummary(user),
	})
}

func (h *HTTPHandler) AdminListPosts(c *gin.Context) {
	var query dto.PostQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	posts, meta, err := h.admin.ListPosts(ctx, CurrentUser(c), query)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, converter.PostListResponse(posts, meta))
}

func (h *HTTPHandler) AdminDeletePost(c *gin.Context) {
	id, ok := pathID(c, "postId")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.admin.DeletePost(ctx, CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "post deleted"})
}
