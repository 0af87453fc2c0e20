package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy allows the safe HTML subset used by rich text editors.
var ugcPolicy = bluemonday.UGCPolicy()

// SanitizeHTML removes scripts, event handlers and other unsafe markup from
// user supplied post and comment bodies.
func SanitizeHTML(value string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(value))
}
