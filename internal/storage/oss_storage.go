package storage

import (
	"blogs/internal/config"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type ossStorage struct {
	bucket *oss.Bucket
	keys   keyLayout
}

// NewOSSStorage 创建阿里云 OSS 存储
func NewOSSStorage(cfg config.Config) (Storage, error) {
	endpoint := strings.TrimSpace(cfg.StorageOSSEndpoint)
	bucketName := strings.TrimSpace(cfg.StorageOSSBucket)
	accessKey := strings.TrimSpace(cfg.StorageOSSAccessKeyID)
	secretKey := strings.TrimSpace(cfg.StorageOSSAccessKeySecret)
	if err := requireSettings(TypeOSS,
		setting{"STORAGE_OSS_ENDPOINT", endpoint},
		setting{"STORAGE_OSS_BUCKET", bucketName},
		setting{"STORAGE_OSS_ACCESS_KEY_ID", accessKey},
		setting{"STORAGE_OSS_ACCESS_KEY_SECRET", secretKey},
	); err != nil {
		return nil, err
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("storage: create OSS client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("storage: open OSS bucket: %w", err)
	}
	return &ossStorage{bucket: bucket, keys: newKeyLayout(cfg.StorageOSSPrefix)}, nil
}

func (s *ossStorage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if err := checkPayload(ctx, data); err != nil {
		return "", err
	}
	key := s.keys.objectKey(opts)
	err := s.bucket.PutObject(key, bytes.NewReader(data),
		oss.WithContext(ctx), oss.ContentType(contentTypeFor(opts)))
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}

// Delete 删除对象；OSS 对不存在的对象同样返回成功。
func (s *ossStorage) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

var _ Storage = (*ossStorage)(nil)
