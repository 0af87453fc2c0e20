package api

import (
	"blogs/internal/auth"
	"blogs/internal/config"
	"blogs/internal/service"
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

// Services 处理器依赖的服务集合
type Services struct {
	Auth     *service.AuthService
	Content  *service.ContentService
	Admin    *service.AdminService
	Taxonomy *service.TaxonomyService
}

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg        config.Config
	auth       *service.AuthService
	content    *service.ContentService
	admin      *service.AdminService
	taxonomy   *service.TaxonomyService
	cookieOpts auth.CookieOptions

	authLimiter *IPRateLimiter
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, svc Services) *HTTPHandler {
	return &HTTPHandler{
		cfg:      cfg,
		auth:     svc.Auth,
		content:  svc.Content,
		admin:    svc.Admin,
		taxonomy: svc.Taxonomy,
		cookieOpts: auth.CookieOptions{
			Secure: cfg.CookieSecure,
			Domain: cfg.CookieDomain,
		},
		authLimiter: NewIPRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst),
	}
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}
