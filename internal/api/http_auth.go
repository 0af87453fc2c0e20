package api

import (
	"blogs/internal/apperr"
	"blogs/internal/auth"
	"blogs/internal/entity/converter"
	"blogs/internal/entity/dto"
	"blogs/internal/service"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) setSession(c *gin.Context, session *service.Session) {
	auth.SetSessionCookie(c.Writer, session.Token, session.ExpiresAt, h.auth.Sessions().TTL(), h.cookieOpts)
}

func (h *HTTPHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, session, err := h.auth.Register(ctx, req)
	if err != nil {
		fail(c, err)
		return
	}

	h.setSession(c, session)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:      converter.UserToSummary(user),
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *HTTPHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, session, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	h.setSession(c, session)
	c.JSON(http.StatusOK, dto.AuthResponse{
		User:      converter.UserToSummary(user),
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *HTTPHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c.Writer, h.cookieOpts)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out"})
}

func (h *HTTPHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, converter.UserToSummary(CurrentUser(c)))
}

// VerifyEmail accepts email and token from the JSON body or, for links
// opened directly, from the query string.
func (h *HTTPHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidPayload(c, err)
			return
		}
	}
	if req.Email == "" {
		req.Email = c.Query("email")
	}
	if req.Token == "" {
		req.Token = c.Query("token")
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Token) == "" {
		fail(c, apperr.New(apperr.Invalid, apperr.CodeInvalidRequest, "email and token are required"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.auth.VerifyEmail(ctx, req.Email, req.Token)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "email verified",
		"user":    converter.UserToSummary(user),
	})
}

func (h *HTTPHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.auth.ForgotPassword(ctx, req.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password reset email sent"})
}

func (h *HTTPHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.auth.ResetPassword(ctx, c.Param("token"), req.Email, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}

func (h *HTTPHandler) Profile(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.auth.GetUser(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, converter.UserToProfile(user))
}

// pathID 解析路径中的数字 ID
func pathID(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || value == 0 {
		fail(c, apperr.New(apperr.Invalid, apperr.CodeInvalidRequest, "invalid "+name))
		return 0, false
	}
	return uint(value), true
}
