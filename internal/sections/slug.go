package sections

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify converts a section title to a URL-safe identifier: lowercase,
// characters outside word/whitespace/hyphen stripped, whitespace runs and
// repeated hyphens collapsed to single hyphens, leading/trailing hyphens
// trimmed.
//
// Slugify("Foo Bar") and Slugify("foo-bar") both return "foo-bar";
// uniqueness across distinct titles is not guaranteed.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugSpaceRe.ReplaceAllString(slug, "-")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
