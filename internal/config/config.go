package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"4000"`
	APIPrefix string `env:"API_PREFIX" envDefault:"/blogs-api/v1"`
	ClientURL string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	DBType     string `env:"DBType" envDefault:"sqlite"`
	DSNURL     string `env:"DSN_URL" envDefault:""`
	DBUser     string `env:"DBUser" envDefault:""`
	DBPassword string `env:"DBPassword" envDefault:""`
	DBAddr     string `env:"DBAddr" envDefault:""`
	DBName     string `env:"DBName" envDefault:"blogs"`
	DBPath     string `env:"DBPath" envDefault:"datas/blogs.db"`
	DBPort     string `env:"DBPort" envDefault:"3306"`

	StorageType          string `env:"STORAGE_TYPE" envDefault:"local"`
	StorageLocalDir      string `env:"STORAGE_LOCAL_DIR" envDefault:"datas/uploads"`
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"/files"`
	UploadMaxBytes       int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`

	// S3 compatible storage
	StorageS3Region          string `env:"STORAGE_S3_REGION"`
	StorageS3Bucket          string `env:"STORAGE_S3_BUCKET"`
	StorageS3Prefix          string `env:"STORAGE_S3_PREFIX"`
	StorageS3Endpoint        string `env:"STORAGE_S3_ENDPOINT"`
	StorageS3AccessKeyID     string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	StorageS3SecretAccessKey string `env:"STORAGE_S3_SECRET_ACCESS_KEY"`
	StorageS3SessionToken    string `env:"STORAGE_S3_SESSION_TOKEN"`
	StorageS3ForcePathStyle  bool   `env:"STORAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`

	// Aliyun OSS
	StorageOSSEndpoint        string `env:"STORAGE_OSS_ENDPOINT"`
	StorageOSSBucket          string `env:"STORAGE_OSS_BUCKET"`
	StorageOSSPrefix          string `env:"STORAGE_OSS_PREFIX"`
	StorageOSSAccessKeyID     string `env:"STORAGE_OSS_ACCESS_KEY_ID"`
	StorageOSSAccessKeySecret string `env:"STORAGE_OSS_ACCESS_KEY_SECRET"`

	// Tencent COS
	StorageCOSBucketURL string `env:"STORAGE_COS_BUCKET_URL"`
	StorageCOSPrefix    string `env:"STORAGE_COS_PREFIX"`
	StorageCOSSecretID  string `env:"STORAGE_COS_SECRET_ID"`
	StorageCOSSecretKey string `env:"STORAGE_COS_SECRET_KEY"`

	// Cloudflare R2
	StorageR2AccountID       string `env:"STORAGE_R2_ACCOUNT_ID"`
	StorageR2Endpoint        string `env:"STORAGE_R2_ENDPOINT"`
	StorageR2Region          string `env:"STORAGE_R2_REGION" envDefault:"auto"`
	StorageR2Bucket          string `env:"STORAGE_R2_BUCKET"`
	StorageR2Prefix          string `env:"STORAGE_R2_PREFIX"`
	StorageR2AccessKeyID     string `env:"STORAGE_R2_ACCESS_KEY_ID"`
	StorageR2SecretAccessKey string `env:"STORAGE_R2_SECRET_ACCESS_KEY"`

	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTIssuer    string        `env:"JWT_ISSUER" envDefault:"blogs-api"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"true"`
	CookieDomain string        `env:"COOKIE_DOMAIN" envDefault:""`

	ResetTokenTTL          time.Duration `env:"RESET_TOKEN_TTL" envDefault:"10m"`
	ConcealUnknownEmail    bool          `env:"AUTH_CONCEAL_UNKNOWN_EMAIL" envDefault:"false"`
	AuthRateLimitRPS       float64       `env:"AUTH_RATE_LIMIT_RPS" envDefault:"0.5"`
	AuthRateLimitBurst     int           `env:"AUTH_RATE_LIMIT_BURST" envDefault:"10"`
	BootstrapAdminEmail    string        `env:"ADMIN_EMAIL" envDefault:""`
	BootstrapAdminPassword string        `env:"ADMIN_PASSWORD" envDefault:""`
	BootstrapAdminName     string        `env:"ADMIN_NAME" envDefault:"Administrator"`

	MailTransport    string        `env:"MAIL_TRANSPORT" envDefault:"log"`
	MailFrom         string        `env:"MAIL_FROM" envDefault:"noreply@example.com"`
	MailFromName     string        `env:"MAIL_FROM_NAME" envDefault:"multi-user blog api"`
	MailSMTPURL      string        `env:"MAIL_SMTP_URL" envDefault:""`
	MailSMTPInsecure bool          `env:"MAIL_SMTP_INSECURE" envDefault:"false"`
	MailResendAPIKey string        `env:"MAIL_RESEND_API_KEY" envDefault:""`
	MailSendTimeout  time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"30s"`
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.WithFields(logrus.Fields{
		"db_type":        Conf.DBType,
		"storage_type":   Conf.StorageType,
		"mail_transport": Conf.MailTransport,
		"api_prefix":     Conf.APIPrefix,
	}).Debug("config loaded")
	return Conf, nil
}
