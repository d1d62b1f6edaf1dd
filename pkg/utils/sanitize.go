package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from user input before it is relayed by
// e-mail. bluemonday escapes what it keeps, so the result is unescaped
// back to plain text.
func SanitizeText(input string) string {
	cleaned := strictPolicy.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
