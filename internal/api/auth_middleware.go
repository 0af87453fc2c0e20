package api

import (
	"blogs/internal/apperr"
	"blogs/internal/auth"
	"blogs/internal/entity/db"

	"github.com/gin-gonic/gin"
)

const (
	currentUserContextKey = "current-user"
)

func sessionToken(c *gin.Context) string {
	token, err := c.Cookie(auth.SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

// Protect 会话认证中间件：读取 cookie、校验令牌并加载用户
func (h *HTTPHandler) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		user, err := h.auth.Authenticate(ctx, sessionToken(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// OptionalUser attaches the caller when a usable session cookie is present
// and lets anonymous requests through otherwise.
func (h *HTTPHandler) OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}
		ctx, cancel := requestContext(c)
		defer cancel()

		user, err := h.auth.Authenticate(ctx, token)
		if err == nil {
			c.Set(currentUserContextKey, user)
		} else if apperr.Is(err, apperr.Forbidden) {
			fail(c, err)
			return
		}
		c.Next()
	}
}

// AdminOnly 管理员权限守卫中间件
func (h *HTTPHandler) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin() {
			fail(c, apperr.New(apperr.Forbidden, apperr.CodeAdminOnly, "admin access required"))
			return
		}
		c.Next()
	}
}

// CurrentUser 从上下文获取当前认证用户
func CurrentUser(c *gin.Context) *db.User {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*db.User)
	if !ok {
		return nil
	}
	return user
}
