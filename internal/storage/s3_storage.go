package storage

import (
	"blogs/internal/config"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3Settings 描述一个 S3 兼容端点（AWS S3 或 Cloudflare R2）
type s3Settings struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	ForcePathStyle  bool
}

func s3SettingsFromConfig(cfg config.Config) (s3Settings, error) {
	settings := s3Settings{
		Bucket:          strings.TrimSpace(cfg.StorageS3Bucket),
		Prefix:          cfg.StorageS3Prefix,
		Region:          strings.TrimSpace(cfg.StorageS3Region),
		Endpoint:        strings.TrimSpace(cfg.StorageS3Endpoint),
		AccessKeyID:     strings.TrimSpace(cfg.StorageS3AccessKeyID),
		SecretAccessKey: strings.TrimSpace(cfg.StorageS3SecretAccessKey),
		SessionToken:    strings.TrimSpace(cfg.StorageS3SessionToken),
		ForcePathStyle:  cfg.StorageS3ForcePathStyle,
	}
	err := requireSettings(TypeS3,
		setting{"STORAGE_S3_BUCKET", settings.Bucket},
		setting{"STORAGE_S3_REGION", settings.Region},
		setting{"STORAGE_S3_ACCESS_KEY_ID", settings.AccessKeyID},
		setting{"STORAGE_S3_SECRET_ACCESS_KEY", settings.SecretAccessKey},
	)
	return settings, err
}

// r2SettingsFromConfig derives the account endpoint when only the account id
// is configured. R2 always uses path-style addressing.
func r2SettingsFromConfig(cfg config.Config) (s3Settings, error) {
	settings := s3Settings{
		Bucket:          strings.TrimSpace(cfg.StorageR2Bucket),
		Prefix:          cfg.StorageR2Prefix,
		Region:          strings.TrimSpace(cfg.StorageR2Region),
		Endpoint:        strings.TrimSpace(cfg.StorageR2Endpoint),
		AccessKeyID:     strings.TrimSpace(cfg.StorageR2AccessKeyID),
		SecretAccessKey: strings.TrimSpace(cfg.StorageR2SecretAccessKey),
		ForcePathStyle:  true,
	}
	if settings.Region == "" {
		settings.Region = "auto"
	}
	if settings.Endpoint == "" {
		if accountID := strings.TrimSpace(cfg.StorageR2AccountID); accountID != "" {
			settings.Endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
		}
	}
	err := requireSettings(TypeR2,
		setting{"STORAGE_R2_BUCKET", settings.Bucket},
		setting{"STORAGE_R2_ENDPOINT or STORAGE_R2_ACCOUNT_ID", settings.Endpoint},
		setting{"STORAGE_R2_ACCESS_KEY_ID", settings.AccessKeyID},
		setting{"STORAGE_R2_SECRET_ACCESS_KEY", settings.SecretAccessKey},
	)
	return settings, err
}

// NewS3Storage 创建 AWS S3（或兼容端点）存储
func NewS3Storage(cfg config.Config) (Storage, error) {
	settings, err := s3SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return newRemoteS3Storage(settings), nil
}

// NewR2Storage 创建 Cloudflare R2 存储
func NewR2Storage(cfg config.Config) (Storage, error) {
	settings, err := r2SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return newRemoteS3Storage(settings), nil
}

// remoteS3Storage 同时服务 S3 与 R2。
type remoteS3Storage struct {
	client *s3.Client
	bucket string
	keys   keyLayout
}

func newRemoteS3Storage(settings s3Settings) *remoteS3Storage {
	awsCfg := aws.Config{
		Region: settings.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, settings.SessionToken),
		),
	}

	endpoint := settings.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = settings.ForcePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return &remoteS3Storage{
		client: client,
		bucket: settings.Bucket,
		keys:   newKeyLayout(settings.Prefix),
	}
}

func (s *remoteS3Storage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if err := checkPayload(ctx, data); err != nil {
		return "", err
	}

	key := s.keys.objectKey(opts)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentTypeFor(opts)),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}

func (s *remoteS3Storage) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isS3NotFound(err) {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

var _ Storage = (*remoteS3Storage)(nil)

func isS3NotFound(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch strings.ToLower(apiErr.ErrorCode()) {
		case "notfound", "nosuchkey", "404":
			return true
		}
	}
	return false
}
