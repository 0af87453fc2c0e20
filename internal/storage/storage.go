// Package storage keeps post images in a local directory or an object store.
// Keys returned by Save are relative; the content service turns them into
// public URLs under STORAGE_PUBLIC_BASE_URL.
package storage

import (
	"blogs/internal/config"
	"context"
	"fmt"
	"strings"
)

// 支持的存储类型
const (
	TypeLocal = "local"
	TypeS3    = "s3"
	TypeOSS   = "oss"
	TypeCOS   = "cos"
	TypeR2    = "r2"
)

// SaveOptions 描述一次上传。Category 为顶层目录（如 posts），Extension 不含
// 前导点，BaseName 为空时使用时间戳，ContentType 为空时按扩展名推断。
type SaveOptions struct {
	Category    string
	Extension   string
	BaseName    string
	ContentType string
}

// Storage persists image bytes and returns the object key.
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
	// Delete 删除 key 对应的对象；对象不存在时不返回错误。
	Delete(ctx context.Context, key string) error
}

// LocalBaseDirProvider is implemented by backends whose files can be served
// straight from disk.
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

var remoteBackends = map[string]func(config.Config) (Storage, error){
	TypeS3:  NewS3Storage,
	TypeR2:  NewR2Storage,
	TypeOSS: NewOSSStorage,
	TypeCOS: NewCOSStorage,
}

// NewStorage 根据 STORAGE_TYPE 实例化存储后端，默认本地目录。
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	if typeName == "" || typeName == TypeLocal {
		return NewLocalStorage(cfg.StorageLocalDir)
	}
	build, ok := remoteBackends[typeName]
	if !ok {
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
	return build(cfg)
}
