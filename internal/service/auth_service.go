package service

import (
	"blogs/internal/apperr"
	"blogs/internal/auth"
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
	"blogs/internal/mail"
	"blogs/internal/model"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Mailer dispatches account emails.
type Mailer interface {
	Dispatch(ctx context.Context, msg mail.Message, policy mail.Policy) error
}

// AuthConfig holds the credential lifecycle settings.
type AuthConfig struct {
	ClientURL           string
	ResetTokenTTL       time.Duration
	ConcealUnknownEmail bool
}

// Session is a freshly issued session token.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService 处理注册、登录、邮箱验证与密码重置，并为请求解析会话。
type AuthService struct {
	repo     model.Repository
	sessions *auth.Manager
	mailer   Mailer
	cfg      AuthConfig
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService 创建认证服务实例
func NewAuthService(repo model.Repository, sessions *auth.Manager, mailer Mailer, cfg AuthConfig) *AuthService {
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = 10 * time.Minute
	}
	return &AuthService{
		repo:     repo,
		sessions: sessions,
		mailer:   mailer,
		cfg:      cfg,
		now:      time.Now,
	}
}

// SetClock 替换时间源（测试使用）
func (s *AuthService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Sessions exposes the session manager for cookie handling.
func (s *AuthService) Sessions() *auth.Manager {
	return s.sessions
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a reader account, sends the verification email in the
// background and signs the new user in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*db.User, *Session, error) {
	name := strings.TrimSpace(req.Name)
	email := normaliseEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, nil, invalid("name, email and password are required")
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, nil, apperr.New(apperr.Conflict, apperr.CodeEmailExists, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, storeError(err, "lookup user", "", "")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, invalid(err.Error())
	}
	token, err := auth.NewOpaqueToken()
	if err != nil {
		return nil, nil, err
	}

	user := &db.User{
		Name:              name,
		Email:             email,
		PasswordHash:      hash,
		Role:              db.UserRoleReader,
		VerificationToken: &token,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperr.New(apperr.Conflict, apperr.CodeEmailExists, "email already registered")
		}
		return nil, nil, storeError(err, "create user", "", "")
	}

	msg := mail.VerificationEmail(s.cfg.ClientURL, user.Name, user.Email, token)
	if err := s.mailer.Dispatch(ctx, msg, mail.BestEffort); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Warn("verification email not queued")
	}

	session, err := s.issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	logrus.WithField("user_id", user.ID).Info("user registered")
	return user, session, nil
}

func (s *AuthService) issue(userID uint) (*Session, error) {
	token, expiresAt, err := s.sessions.Issue(userID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

var errInvalidCredentials = apperr.New(apperr.Unauthenticated, apperr.CodeInvalidCredentials, "invalid credentials")

// Login checks credentials. Unknown emails and wrong passwords fail with the
// same error; unknown emails still pay for a bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (*db.User, *Session, error) {
	email = normaliseEmail(email)
	if email == "" || password == "" {
		return nil, nil, invalid("email and password required")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = auth.VerifyPassword(s.dummyPasswordHash(), password)
			return nil, nil, errInvalidCredentials
		}
		return nil, nil, storeError(err, "lookup user", "", "")
	}
	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil, errInvalidCredentials
	}

	session, err := s.issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *AuthService) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("dummy-password-for-timing")
	})
	return s.dummyHash
}

// Authenticate resolves the user behind a session token. Banned users are
// recognised but refused.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*db.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperr.New(apperr.Unauthenticated, apperr.CodeNoSession, "no session")
	}
	claims, err := s.sessions.Verify(token)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Unauthenticated, apperr.CodeInvalidToken, "invalid token")
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Unauthenticated, apperr.CodeUserNotFound, "user not found")
		}
		return nil, storeError(err, "load session user", "", "")
	}
	if claims.IssuedAt != nil && user.SessionRevoked(claims.IssuedAt.Time) {
		return nil, apperr.New(apperr.Unauthenticated, apperr.CodeSessionRevoked, "session revoked")
	}
	if user.IsBanned {
		return nil, apperr.New(apperr.Forbidden, apperr.CodeUserBanned, "banned")
	}
	return user, nil
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(ctx context.Context, id uint) (*db.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "load user", apperr.CodeUserNotFound, "user not found")
	}
	return user, nil
}

var errInvalidVerification = apperr.New(apperr.NotFound, apperr.CodeInvalidVerifyToken, "invalid verification token")

// VerifyEmail consumes the verification token.
func (s *AuthService) VerifyEmail(ctx context.Context, email, token string) (*db.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, normaliseEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidVerification
		}
		return nil, storeError(err, "lookup user", "", "")
	}
	if !auth.TokenMatches(user.VerificationToken, strings.TrimSpace(token)) {
		return nil, errInvalidVerification
	}

	now := s.now()
	user.IsVerified = true
	user.VerifiedAt = &now
	user.VerificationToken = nil
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, storeError(err, "save user", apperr.CodeUserNotFound, "user not found")
	}
	return user, nil
}

// ForgotPassword mints a reset token and mails it. Delivery is required: if
// the email cannot be sent the token is withdrawn and Unavailable returned.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normaliseEmail(email)
	if email == "" {
		return invalid("email is required")
	}
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if s.cfg.ConcealUnknownEmail {
				logrus.Info("password reset requested for unknown email")
				return nil
			}
			return apperr.New(apperr.NotFound, apperr.CodeUserNotFound, "user does not exist, please create an account")
		}
		return storeError(err, "lookup user", "", "")
	}

	token, err := auth.NewOpaqueToken()
	if err != nil {
		return err
	}
	expire := s.now().Add(s.cfg.ResetTokenTTL)
	user.ResetPasswordToken = &token
	user.ResetPasswordExpire = &expire
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return storeError(err, "save reset token", apperr.CodeUserNotFound, "user not found")
	}

	msg := mail.PasswordResetEmail(s.cfg.ClientURL, user.Name, user.Email, token, s.cfg.ResetTokenTTL)
	if err := s.mailer.Dispatch(ctx, msg, mail.Required); err != nil {
		user.ResetPasswordToken = nil
		user.ResetPasswordExpire = nil
		if clearErr := s.repo.SaveUser(ctx, user); clearErr != nil {
			logrus.WithError(clearErr).WithField("user_id", user.ID).Error("failed to withdraw reset token")
		}
		return apperr.Wrap(err, apperr.Unavailable, apperr.CodeMailUnavailable, "failed to send reset email")
	}
	return nil
}

var errInvalidReset = apperr.New(apperr.ExpiredOrInvalid, apperr.CodeInvalidResetToken, "invalid or expired token")

// ResetPassword sets a new password when email and token match and the token
// has not expired. Sessions issued before the reset stop working.
func (s *AuthService) ResetPassword(ctx context.Context, token, email, newPassword string) error {
	user, err := s.repo.GetUserByEmail(ctx, normaliseEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errInvalidReset
		}
		return storeError(err, "lookup user", "", "")
	}
	now := s.now()
	if !auth.TokenMatches(user.ResetPasswordToken, strings.TrimSpace(token)) ||
		user.ResetPasswordExpire == nil || !now.Before(*user.ResetPasswordExpire) {
		return errInvalidReset
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return invalid(err.Error())
	}
	user.PasswordHash = hash
	user.ResetPasswordToken = nil
	user.ResetPasswordExpire = nil
	user.PasswordChangedAt = &now
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return storeError(err, "save password", apperr.CodeUserNotFound, "user not found")
	}
	logrus.WithField("user_id", user.ID).Info("password reset")
	return nil
}
