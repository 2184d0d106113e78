package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/data"
	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/markdown"
)

// CategoryRepository defines the interface for database operations on
// categories.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*data.Category, error)
	GetBySlug(ctx context.Context, slug string) (*data.Category, error)
	GetByID(ctx context.Context, id string) (*data.Category, error)
	MaxSortOrder(ctx context.Context, parentID *string) (int, error)
	Save(ctx context.Context, category *data.Category) error
	Update(ctx context.Context, id, name string, description *string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, id string) (int, error)
}

// PathSeparator joins category names in a resolved breadcrumb path.
const PathSeparator = " / "

// CategoryService provides business logic for the category tree.
type CategoryService struct {
	repo      CategoryRepository
	documents DocumentRepository
	cache     *cache.Store
	render    *markdown.Renderer
	log       logger.Logger
	timeout   time.Duration
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo CategoryRepository, documents DocumentRepository, store *cache.Store, render *markdown.Renderer, log logger.Logger, timeout time.Duration) *CategoryService {
	return &CategoryService{
		repo:      repo,
		documents: documents,
		cache:     store,
		render:    render,
		log:       log,
		timeout:   timeout,
	}
}

// List returns all categories ordered by sort_order, served from the query
// cache until a category mutation invalidates it.
func (s *CategoryService) List(ctx context.Context) ([]*data.Category, error) {
	return cache.Get(ctx, s.cache, cache.KeyCategories(), func(ctx context.Context) ([]*data.Category, error) {
		categories, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			if c.Description != nil {
				c.DescriptionHTML = s.render.Render(*c.Description)
			}
		}
		return categories, nil
	})
}

// GetBySlug returns a single category, or nil when the slug is unknown.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*data.Category, error) {
	return cache.Get(ctx, s.cache, cache.KeyCategoryBySlug(slug), func(ctx context.Context) (*data.Category, error) {
		category, err := s.repo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if category != nil && category.Description != nil {
			category.DescriptionHTML = s.render.Render(*category.Description)
		}
		return category, nil
	})
}

// Subcategories returns the direct children of a category in sort order.
func (s *CategoryService) Subcategories(ctx context.Context, parentID string) ([]*data.Category, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var children []*data.Category
	for _, c := range all {
		if c.ParentID != nil && *c.ParentID == parentID {
			children = append(children, c)
		}
	}
	return children, nil
}

// ResolvePath walks the parent chain of a category and returns the full
// ancestor path, root first, joined by PathSeparator. The walk is bounded by
// the total category count: parent links are externally editable data, so a
// malformed cycle must fail with ErrCycleDetected instead of looping.
func (s *CategoryService) ResolvePath(ctx context.Context, categoryID string) (string, error) {
	all, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	byID := make(map[string]*data.Category, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}

	current, ok := byID[categoryID]
	if !ok {
		return "", fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
	}

	names := []string{}
	for steps := 0; ; steps++ {
		if steps > len(all) {
			return "", fmt.Errorf("%w: starting from %s", ErrCycleDetected, categoryID)
		}
		names = append(names, current.Name)
		if current.ParentID == nil {
			break
		}
		parent, ok := byID[*current.ParentID]
		if !ok {
			// Dangling parent reference; treat the chain as ending here.
			break
		}
		current = parent
	}

	// The walk collected leaf-first; the path reads root-first.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, PathSeparator), nil
}

// Create adds a category. The slug derives from the name and the parent's
// slug, and the new sibling is ordered last.
func (s *CategoryService) Create(ctx context.Context, name string, description *string, parentID *string, parentSlug string) (*data.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name must not be empty", ErrValidation)
	}

	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	maxOrder, err := s.repo.MaxSortOrder(ctx, parentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &data.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        GenerateSlug(name, parentSlug),
		ParentID:    parentID,
		Description: description,
		SortOrder:   maxOrder + 1,
		IsPublic:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, wrapRepoErr(err)
	}
	s.cache.Invalidate(cache.PrefixCategories)
	return category, nil
}

// Update renames a category and/or changes its description.
func (s *CategoryService) Update(ctx context.Context, id, name string, description *string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name must not be empty", ErrValidation)
	}

	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Update(ctx, id, name, description, time.Now()); err != nil {
		return wrapRepoErr(err)
	}
	// Category names are joined into document listings, so both families go.
	s.cache.Invalidate(cache.PrefixCategories, cache.PrefixDocuments)
	return nil
}

// Delete removes an empty category. A category that still has documents or
// subcategories cannot be deleted; both checks run before the delete, and a
// document violation is reported over a subcategory one.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	docCount, err := s.documents.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	childCount, err := s.repo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if docCount > 0 {
		return fmt.Errorf("%w: %d documents", ErrCategoryNotEmpty, docCount)
	}
	if childCount > 0 {
		return fmt.Errorf("%w: %d subcategories", ErrCategoryHasChildren, childCount)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return wrapRepoErr(err)
	}
	s.cache.Invalidate(cache.PrefixCategories)
	return nil
}
