package blogservice

import "github.com/microcosm-cc/bluemonday"

// descriptionPolicy allows the markup a rich text editor produces and nothing executable.
var descriptionPolicy = bluemonday.UGCPolicy()

// SanitizeHTML strips active content from a blog description before it is rendered verbatim.
func SanitizeHTML(html string) string {
	return descriptionPolicy.Sanitize(html)
}
