package project

import "github.com/goliatone/go-slug"

// Slugify normalizes a page title into a URL-safe slug. Titles that cannot
// be normalized fall back to "page" rather than producing an empty slug.
func Slugify(title string) string {
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		return "page"
	}
	return normalized
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
