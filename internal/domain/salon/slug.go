package salon

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug joins the parts, lowercases and collapses every non-alphanumeric run to "-".
func Slug(parts ...string) string {
	s := strings.ToLower(strings.Join(parts, " "))
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
