package util

import "html"

// DecodeHTML decodes HTML entities in provider text ("&amp;" -> "&") for
// display. It must not be applied to the canonical correct answer used for
// equality checks.
func DecodeHTML(s string) string {
	return html.UnescapeString(s)
}
