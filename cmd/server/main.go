package main

import (
	"blogs/internal/api"
	"blogs/internal/auth"
	"blogs/internal/config"
	"blogs/internal/mail"
	"blogs/internal/model"
	"blogs/internal/service"
	"blogs/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("failed to load .env")
	}

	// 初始化配置
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		return
	}

	// 初始化logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	if err := model.SeedAdmin(context.Background(), repo, cfg); err != nil {
		logrus.WithError(err).Warn("failed to seed admin user")
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}

	transport, err := mail.NewTransport(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise mail transport")
		return
	}
	dispatcher := mail.NewDispatcher(transport, cfg.MailSendTimeout)

	sessions, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise session manager")
		return
	}

	authSvc := service.NewAuthService(repo, sessions, dispatcher, service.AuthConfig{
		ClientURL:           cfg.ClientURL,
		ResetTokenTTL:       cfg.ResetTokenTTL,
		ConcealUnknownEmail: cfg.ConcealUnknownEmail,
	})
	contentSvc := service.NewContentService(repo, store, cfg.StoragePublicBaseURL)
	httpHandler := api.NewHTTPHandler(cfg, api.Services{
		Auth:     authSvc,
		Content:  contentSvc,
		Admin:    service.NewAdminService(repo, contentSvc),
		Taxonomy: service.NewTaxonomyService(repo),
	})

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.MaxMultipartMemory = cfg.UploadMaxBytes

	// 添加中间件
	r.Use(api.LoggingMiddleware())
	r.Use(api.CORSMiddleware(cfg.ClientURL))
	r.Use(gin.Recovery())

	httpHandler.RegisterRoutes(r)

	if localProvider, ok := store.(storage.LocalBaseDirProvider); ok {
		publicPrefix := strings.TrimSpace(cfg.StoragePublicBaseURL)
		if publicPrefix == "" {
			publicPrefix = "/files"
		}
		if !strings.HasPrefix(publicPrefix, "http://") && !strings.HasPrefix(publicPrefix, "https://") {
			if !strings.HasPrefix(publicPrefix, "/") {
				publicPrefix = "/" + publicPrefix
			}
			r.Static(publicPrefix, localProvider.LocalBaseDir())
		}
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	// 创建HTTP服务器
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("host", serverHost).Info("服务器启动")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("服务器启动失败")
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("服务器关闭中")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("failed to shut down http server")
	}
	// 等待后台邮件发送完成
	dispatcher.Wait()
}
