package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes mounts every endpoint under the configured API prefix.
func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	prefix := "/" + strings.Trim(strings.TrimSpace(h.cfg.APIPrefix), "/")
	if prefix == "/" {
		prefix = ""
	}
	apiGroup := r.Group(prefix)
	apiGroup.Use(ErrorMiddleware())

	protect := h.Protect()
	optional := h.OptionalUser()
	limited := h.authLimiter.Middleware()

	// 认证
	apiGroup.POST("/register", limited, h.Register)
	apiGroup.POST("/login", limited, h.Login)
	apiGroup.POST("/logout", h.Logout)
	apiGroup.POST("/verify-email", limited, h.VerifyEmail)
	apiGroup.POST("/forgot-password", limited, h.ForgotPassword)
	apiGroup.POST("/reset-password/:token", limited, h.ResetPassword)
	apiGroup.GET("/me", protect, h.Me)
	apiGroup.GET("/profile/:userId", h.Profile)

	// 文章
	apiGroup.GET("/get-all-post", optional, h.ListPosts)
	apiGroup.GET("/get-single-post/:id", optional, h.GetPost)
	apiGroup.GET("/get-my-posts/:userId", protect, h.ListUserPosts)
	apiGroup.GET("/get-my-drafts", protect, h.ListDrafts)
	apiGroup.POST("/create-post", protect, h.CreatePost)
	apiGroup.PATCH("/update-post/:id", protect, h.UpdatePost)
	apiGroup.DELETE("/delete-post/:id", protect, h.DeletePost)

	// 评论
	apiGroup.GET("/get-comments/:postId", optional, h.ListComments)
	apiGroup.POST("/create-comment/:postId", protect, h.CreateComment)
	apiGroup.PATCH("/update-comment/:commentId", protect, h.UpdateComment)
	apiGroup.DELETE("/delete-comment/:commentId", protect, h.DeleteComment)

	// 分类与标签
	apiGroup.GET("/categories", protect, h.ListCategories)
	apiGroup.POST("/categories", protect, h.AdminOnly(), h.CreateCategory)
	apiGroup.DELETE("/categories/:id", protect, h.AdminOnly(), h.DeleteCategory)
	apiGroup.GET("/tags", protect, h.ListTags)
	apiGroup.POST("/tags", protect, h.AdminOnly(), h.CreateTag)
	apiGroup.DELETE("/tags/:id", protect, h.AdminOnly(), h.DeleteTag)

	admin := apiGroup.Group("/admin")
	admin.Use(protect, h.AdminOnly())
	admin.GET("/get-users", h.ListUsers)
	admin.DELETE("/delete-user/:userId", h.DeleteUser)
	admin.POST("/make-admin/:userId", h.MakeAdmin)
	admin.DELETE("/ban-user/:userId/ban", h.ToggleBan)
	admin.GET("/get-posts", h.AdminListPosts)
	admin.DELETE("/delete-post/:postId", h.AdminDeletePost)
}

// CORSMiddleware CORS跨域中间件，仅允许前端来源并携带凭证
func CORSMiddleware(clientURL string) gin.HandlerFunc {
	allowed := strings.TrimRight(strings.TrimSpace(clientURL), "/")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && origin == allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Header("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggingMiddleware 日志记录中间件
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  duration.String(),
			"size":      c.Writer.Size(),
			"client_ip": c.ClientIP(),
		}).Info("http_request")
	}
}
