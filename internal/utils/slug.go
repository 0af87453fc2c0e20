package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSlugLength   = 120
	defaultPostSlug = "post"
)

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL-friendly slug: accents are removed,
// whitespace becomes hyphens and anything else outside [a-z0-9-] is dropped.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(strings.Join(strings.Fields(result), "-"))
	result = slugInvalid.ReplaceAllString(result, "")
	result = slugHyphenRuns.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > maxSlugLength {
		result = strings.TrimRight(result[:maxSlugLength], "-")
	}
	if result == "" {
		return defaultPostSlug
	}
	return result
}
