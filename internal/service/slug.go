package service

import (
	"regexp"
	"strings"
)

var (
	slugFolder    = strings.NewReplacer("å", "a", "ä", "a", "ö", "o")
	slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateSlug derives a URL-safe identifier from a display name. Swedish
// diacritics are folded (å/ä→a, ö→o), runs of anything else non-alphanumeric
// collapse to a single hyphen, and leading/trailing hyphens are stripped.
// A subcategory slug is prefixed with its parent's slug.
func GenerateSlug(name, parentSlug string) string {
	base := strings.ToLower(name)
	base = slugFolder.Replace(base)
	base = slugSeparator.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if parentSlug != "" {
		return parentSlug + "-" + base
	}
	return base
}

// SanitizeFilename makes a file name safe for use as a storage object key.
// The extension is preserved so the document type stays derivable.
func SanitizeFilename(name string) string {
	ext := ""
	if i := strings.LastIndex(name, "."); i > 0 {
		ext = strings.ToLower(name[i:])
		name = name[:i]
	}
	base := GenerateSlug(name, "")
	if base == "" {
		base = "file"
	}
	return base + ext
}
