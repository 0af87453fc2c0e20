package api

import (
	"blogs/internal/entity/converter"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListCategories(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	categories, err := h.taxonomy.ListCategories(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: converter.CategoriesToDTOs(categories)})
}

func (h *HTTPHandler) CreateCategory(c *gin.Context) {
	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	category, err := h.taxonomy.CreateCategory(ctx, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, converter.CategoriesToDTOs([]db.Category{*category})[0])
}

func (h *HTTPHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.taxonomy.DeleteCategory(ctx, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "category deleted"})
}

func (h *HTTPHandler) ListTags(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	tags, err := h.taxonomy.ListTags(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TagListResponse{Tags: converter.TagsToDTOs(tags)})
}

func (h *HTTPHandler) CreateTag(c *gin.Context) {
	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tag, err := h.taxonomy.CreateTag(ctx, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, converter.TagsToDTOs([]db.Tag{*tag})[0])
}

func (h *HTTPHandler) DeleteTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.taxonomy.DeleteTag(ctx, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "tag deleted"})
}
