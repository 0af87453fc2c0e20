package api

import (
	"blogs/internal/apperr"
	"blogs/internal/service"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const imageFormField = "image"

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// readUpload 读取可选的图片附件；未上传时返回 nil
func (h *HTTPHandler) readUpload(c *gin.Context) (*service.Upload, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	header, err := c.FormFile(imageFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperr.Wrap(err, apperr.Invalid, apperr.CodeInvalidImage, "invalid image upload")
	}

	limit := h.cfg.UploadMaxBytes
	if limit > 0 && header.Size > limit {
		return nil, apperr.New(apperr.Invalid, apperr.CodeInvalidImage,
			fmt.Sprintf("image exceeds the %d byte limit", limit))
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	reader := io.Reader(file)
	if limit > 0 {
		reader = io.LimitReader(file, limit+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, apperr.New(apperr.Invalid, apperr.CodeInvalidImage,
			fmt.Sprintf("image exceeds the %d byte limit", limit))
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &service.Upload{Filename: header.Filename, Data: data}, nil
}
