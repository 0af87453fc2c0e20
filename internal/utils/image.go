package utils

import (
	"errors"
	"mime"
	"net/http"
	"strings"
)

// ErrUnsupportedImage is returned for uploads that are not a supported image.
var ErrUnsupportedImage = errors.New("unsupported image type")

// DetectImage sniffs the content type of data and returns it with a file
// extension. Only png, jpeg, gif and webp are accepted; the client supplied
// content type is not trusted.
func DetectImage(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", errors.New("empty image")
	}
	mimeType := http.DetectContentType(data)
	ext := ExtensionFromMime(mimeType)
	switch ext {
	case "png", "jpg", "gif", "webp":
		return mimeType, ext, nil
	default:
		return "", "", ErrUnsupportedImage
	}
}

// ExtensionFromMime maps an image MIME type to a file extension.
func ExtensionFromMime(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = parsed
	}

	switch strings.ToLower(mimeType) {
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/bmp":
		return "bmp"
	case "image/svg+xml":
		return "svg"
	default:
		return ""
	}
}
