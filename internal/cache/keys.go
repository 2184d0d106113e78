package cache

import "fmt"

// Cache keys live in one place so read and invalidation sites cannot drift
// apart. Families share a prefix; mutations invalidate by prefix.
const (
	PrefixCategories   = "categories:"
	PrefixDocuments    = "documents:"
	PrefixQuickLinks   = "quick-links:"
	PrefixSiteSettings = "site-settings:"
)

// KeyCategories addresses the full category listing.
func KeyCategories() string { return PrefixCategories + "all" }

// KeyCategoryBySlug addresses a single category lookup.
func KeyCategoryBySlug(slug string) string { return PrefixCategories + "slug=" + slug }

// KeyDocuments addresses a document listing, optionally filtered.
func KeyDocuments(categoryID *string) string {
	if categoryID == nil {
		return PrefixDocuments + "category=all"
	}
	return PrefixDocuments + "category=" + *categoryID
}

// KeyRecentDocuments addresses the recent-documents listing.
func KeyRecentDocuments(limit int) string {
	return fmt.Sprintf("%srecent=%d", PrefixDocuments, limit)
}

// KeyQuickLinks addresses the quick-link listing.
func KeyQuickLinks() string { return PrefixQuickLinks + "all" }

// KeySiteSettings addresses the settings map.
func KeySiteSettings() string { return PrefixSiteSettings + "all" }
