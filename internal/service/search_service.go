package service

import (
	"context"
	"strings"

	"go-intranet-app/internal/data"
	"go-intranet-app/internal/logger"
)

// SearchResults groups the three result families of one query. Each slice
// preserves the order of its source listing.
type SearchResults struct {
	Documents  []*data.Document `json:"documents"`
	Categories []*data.Category `json:"categories"`
	Processes  []ProcessItem    `json:"processes"`
}

// SearchService matches a free-text query against documents, top-level
// categories and the fixed process catalog. Matching is case-insensitive
// substring containment over each item's searchable text; there is no
// ranking.
type SearchService struct {
	documents  *DocumentService
	categories *CategoryService
	log        logger.Logger
}

// NewSearchService creates a new SearchService.
func NewSearchService(documents *DocumentService, categories *CategoryService, log logger.Logger) *SearchService {
	return &SearchService{documents: documents, categories: categories, log: log}
}

// Search runs one query across all three families. An empty or whitespace
// query matches everything. Listings come through the services, so repeated
// searches hit the query cache rather than the backend.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResults, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	documents, err := s.documents.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	results := &SearchResults{}
	for _, doc := range documents {
		if matches(needle, documentText(doc)) {
			results.Documents = append(results.Documents, doc)
		}
	}
	for _, cat := range categories {
		// Only roots appear in search; subfolders surface through their parent.
		if cat.ParentID != nil {
			continue
		}
		if matches(needle, categoryText(cat)) {
			results.Categories = append(results.Categories, cat)
		}
	}
	for _, item := range ProcessCatalog() {
		if matches(needle, item.Title+" "+item.Description) {
			results.Processes = append(results.Processes, item)
		}
	}
	return results, nil
}

func matches(needle, haystack string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}

func documentText(doc *data.Document) string {
	parts := []string{doc.Title}
	if doc.Description != nil {
		parts = append(parts, *doc.Description)
	}
	parts = append(parts, doc.Tags...)
	if doc.CategoryName != nil {
		parts = append(parts, *doc.CategoryName)
	}
	return strings.Join(parts, " ")
}

func categoryText(cat *data.Category) string {
	if cat.Description != nil {
		return cat.Name + " " + *cat.Description
	}
	return cat.Name
}
