package shared

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9]+`)
	diacriticFold  = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// ValidateSlug checks that a slug is lowercase kebab-case
func ValidateSlug(slug string) error {
	if slug == "" {
		return NewDomainError("INVALID_SLUG", "Slug is required")
	}
	if !slugPattern.MatchString(slug) {
		return NewDomainError("INVALID_SLUG", "Slug must contain only lowercase letters, digits and hyphens")
	}
	return nil
}

// Slugify derives a URL slug from free text, folding diacritics
// so names like "Décoration" become "decoration"
func Slugify(s string) string {
	folded, _, err := transform.String(diacriticFold, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = slugDisallowed.ReplaceAllString(folded, "-")
	return strings.Trim(folded, "-")
}
