package api

import (
	"blogs/internal/apperr"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// fail 记录错误并中止请求，由 ErrorMiddleware 统一输出
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// invalidPayload 无效的请求体
func invalidPayload(c *gin.Context, err error) {
	fail(c, apperr.Wrap(err, apperr.Invalid, apperr.CodeInvalidRequest, "invalid request payload"))
}

// ErrorMiddleware is the terminal error stage. Handlers attach failures with
// c.Error; the last one is classified, written as {code, message} and logged.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		status, body := classify(err)
		entry := logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
			"code":   body.Code,
		})
		if status >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected")
		}
		c.JSON(status, body)
	}
}

func classify(err error) (int, APIError) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr.Kind.Status(), APIError{Code: appErr.Code, Message: appErr.Message}
	}
	return http.StatusInternalServerError, APIError{
		Code:    apperr.CodeInternal,
		Message: "internal server error",
	}
}
