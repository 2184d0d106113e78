package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/config"
	"go-intranet-app/internal/data"
	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/markdown"
)

func newTestLogger() logger.Logger {
	return logger.New(config.LogConfig{Level: "error", Format: "console"}, io.Discard)
}

// fakeCategoryRepo is an in-memory CategoryRepository that counts reads.
type fakeCategoryRepo struct {
	categories []*data.Category
	getAllCalls int
	deleted     []string
}

var _ CategoryRepository = (*fakeCategoryRepo)(nil)

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]*data.Category, error) {
	f.getAllCalls++
	out := make([]*data.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*data.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*data.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) MaxSortOrder(ctx context.Context, parentID *string) (int, error) {
	max := 0
	for _, c := range f.categories {
		if !sameParent(c.ParentID, parentID) {
			continue
		}
		if c.SortOrder > max {
			max = c.SortOrder
		}
	}
	return max, nil
}

func (f *fakeCategoryRepo) Save(ctx context.Context, category *data.Category) error {
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, id, name string, description *string, updatedAt time.Time) error {
	for _, c := range f.categories {
		if c.ID == id {
			c.Name = name
			c.Description = description
			c.UpdatedAt = updatedAt
			return nil
		}
	}
	return fmt.Errorf("%w: category %s", data.ErrNotFound, id)
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return fmt.Errorf("%w: category %s", data.ErrNotFound, id)
}

func (f *fakeCategoryRepo) CountChildren(ctx context.Context, id string) (int, error) {
	n := 0
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == id {
			n++
		}
	}
	return n, nil
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cat(id, name, slug string, parentID *string, order int) *data.Category {
	return &data.Category{ID: id, Name: name, Slug: slug, ParentID: parentID, SortOrder: order, IsPublic: true}
}

func newCategoryService(repo *fakeCategoryRepo, docs DocumentRepository) *CategoryService {
	return NewCategoryService(repo, docs, cache.New(time.Second), markdown.New(), newTestLogger(), time.Second)
}

func TestCategoryService_CreateDerivesSlugAndOrder(t *testing.T) {
	parentID := "p1"
	repo := &fakeCategoryRepo{categories: []*data.Category{
		cat("p1", "VLS", "vls", nil, 1),
		cat("c1", "Mallar", "vls-mallar", &parentID, 2),
	}}
	svc := newCategoryService(repo, &fakeDocumentRepo{})

	created, err := svc.Create(context.Background(), "Rutiner", nil, &parentID, "vls")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Slug != "vls-rutiner" {
		t.Errorf("slug = %q, want %q", created.Slug, "vls-rutiner")
	}
	if created.SortOrder != 3 {
		t.Errorf("sort order = %d, want 3", created.SortOrder)
	}
	if !created.IsPublic {
		t.Error("new categories should default to public")
	}
}

func TestCategoryService_CreateRejectsEmptyName(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{}, &fakeDocumentRepo{})

	if _, err := svc.Create(context.Background(), "   ", nil, nil, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestCategoryService_ListIsCached(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*data.Category{cat("a", "A", "a", nil, 1)}}
	svc := newCategoryService(repo, &fakeDocumentRepo{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.List(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if repo.getAllCalls != 1 {
		t.Errorf("repo reads = %d, want 1", repo.getAllCalls)
	}

	if _, err := svc.Create(ctx, "B", nil, nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.getAllCalls != 2 {
		t.Errorf("repo reads after create = %d, want 2", repo.getAllCalls)
	}
	if len(all) != 2 {
		t.Errorf("listing has %d categories, want 2", len(all))
	}
}

func TestCategoryService_ResolvePath(t *testing.T) {
	rootID := "root"
	midID := "mid"
	repo := &fakeCategoryRepo{categories: []*data.Category{
		cat("root", "VLS", "vls", nil, 1),
		cat("mid", "Rutiner", "vls-rutiner", &rootID, 1),
		cat("leaf", "Mallar", "vls-rutiner-mallar", &midID, 1),
	}}
	svc := newCategoryService(repo, &fakeDocumentRepo{})
	ctx := context.Background()

	path, err := svc.ResolvePath(ctx, "leaf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "VLS / Rutiner / Mallar" {
		t.Errorf("path = %q, want %q", path, "VLS / Rutiner / Mallar")
	}

	path, err = svc.ResolvePath(ctx, "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "VLS" {
		t.Errorf("root path = %q, want %q", path, "VLS")
	}

	if _, err := svc.ResolvePath(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryService_ResolvePathDetectsCycle(t *testing.T) {
	aID, bID := "a", "b"
	repo := &fakeCategoryRepo{categories: []*data.Category{
		cat("a", "A", "a", &bID, 1),
		cat("b", "B", "b", &aID, 1),
	}}
	svc := newCategoryService(repo, &fakeDocumentRepo{})

	if _, err := svc.ResolvePath(context.Background(), "a"); !errors.Is(err, ErrCycleDetected) {
		t.Errorf("expected ErrCycleDetected, got %v", err)
	}
}

func TestCategoryService_UpdateUnknownIDReportsNotFound(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{}, &fakeDocumentRepo{})

	if err := svc.Update(context.Background(), "missing", "Rutiner", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryService_DeleteChecksContents(t *testing.T) {
	parentID := "p"
	docRepo := &fakeDocumentRepo{}
	catID := "p"
	docRepo.documents = append(docRepo.documents, &data.Document{ID: "d1", Title: "Doc", CategoryID: &catID})

	repo := &fakeCategoryRepo{categories: []*data.Category{
		cat("p", "Parent", "parent", nil, 1),
		cat("c", "Child", "parent-child", &parentID, 1),
	}}
	svc := newCategoryService(repo, docRepo)
	ctx := context.Background()

	// Documents win over subcategories even when both violations hold.
	if err := svc.Delete(ctx, "p"); !errors.Is(err, ErrCategoryNotEmpty) {
		t.Errorf("expected ErrCategoryNotEmpty, got %v", err)
	}

	docRepo.documents = nil
	if err := svc.Delete(ctx, "p"); !errors.Is(err, ErrCategoryHasChildren) {
		t.Errorf("expected ErrCategoryHasChildren, got %v", err)
	}

	if err := svc.Delete(ctx, "c"); err != nil {
		t.Fatalf("unexpected error deleting empty category: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "c" {
		t.Errorf("deleted = %v, want [c]", repo.deleted)
	}
}
