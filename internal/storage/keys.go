package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"
)

var (
	errEmptyPayload = errors.New("storage: empty payload")
	errEmptyKey     = errors.New("storage: empty key")
)

// keyLayout 生成对象键：<prefix>/<category>/<yyyy>/<mm>/<base>.<ext>
type keyLayout struct {
	prefix string
	now    func() time.Time
}

func newKeyLayout(prefix string) keyLayout {
	return keyLayout{prefix: strings.Trim(strings.TrimSpace(prefix), "/"), now: time.Now}
}

func (l keyLayout) objectKey(opts SaveOptions) string {
	now := l.now().UTC()
	category := segment(opts.Category)
	if category == "" {
		category = "misc"
	}
	base := strings.Trim(segment(strings.ReplaceAll(strings.TrimSpace(opts.BaseName), " ", "-")), "-_")
	if base == "" {
		base = fmt.Sprintf("%d", now.UnixNano())
	}
	key := path.Join(category, fmt.Sprintf("%04d", now.Year()), fmt.Sprintf("%02d", int(now.Month())),
		base+"."+extension(opts.Extension))
	if l.prefix == "" {
		return key
	}
	return path.Join(l.prefix, key)
}

// segment keeps lowercase letters, digits, '-' and '_'.
func segment(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			b.WriteByte(ch + 'a' - 'A')
		}
	}
	return b.String()
}

func extension(ext string) string {
	if cleaned := segment(strings.TrimPrefix(strings.TrimSpace(ext), ".")); cleaned != "" {
		return cleaned
	}
	return "bin"
}

func contentTypeFor(opts SaveOptions) string {
	if ct := strings.TrimSpace(opts.ContentType); ct != "" {
		return ct
	}
	if typeName := mime.TypeByExtension("." + extension(opts.Extension)); typeName != "" {
		return typeName
	}
	return "application/octet-stream"
}

// cleanKey normalises a key for deletion. Relative segments cannot climb
// above the storage root.
func cleanKey(key string) (string, error) {
	cleaned := strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(key)), "/")
	if cleaned == "" {
		return "", errEmptyKey
	}
	return cleaned, nil
}

func checkPayload(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return errEmptyPayload
	}
	return ctx.Err()
}

// KeyFromURL strips publicBase from a stored public URL, returning the
// storage key. ok is false when the URL does not belong to publicBase.
func KeyFromURL(publicBase, rawURL string) (string, bool) {
	base := strings.TrimRight(strings.TrimSpace(publicBase), "/")
	value := strings.TrimSpace(rawURL)
	if base == "" || value == "" || !strings.HasPrefix(value, base+"/") {
		return "", false
	}
	key := strings.TrimPrefix(value, base+"/")
	return key, key != ""
}
