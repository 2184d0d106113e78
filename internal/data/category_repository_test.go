//go:build integration

package data

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testCategory(id, name, slug string, parentID *string, order int) *Category {
	now := time.Now().UTC()
	return &Category{
		ID: id, Name: name, Slug: slug, ParentID: parentID,
		SortOrder: order, IsPublic: true, CreatedAt: now, UpdatedAt: now,
	}
}

func TestCategoryRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	if err := repo.Save(ctx, testCategory("c1", "VLS", "vls", nil, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "vls")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != "c1" {
		t.Errorf("GetBySlug = %v, want c1", got)
	}

	missing, err := repo.GetBySlug(ctx, "nope")
	if err != nil {
		t.Fatalf("a miss must not be an error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown slug, got %v", missing)
	}
}

func TestCategoryRepository_GetAllOrdersBySortOrder(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	for _, c := range []*Category{
		testCategory("c2", "B", "b", nil, 2),
		testCategory("c1", "A", "a", nil, 1),
		testCategory("c3", "C", "c", nil, 3),
	} {
		if err := repo.Save(ctx, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d categories, want 3", len(all))
	}
	for i, want := range []string{"c1", "c2", "c3"} {
		if all[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, all[i].ID, want)
		}
	}
}

func TestCategoryRepository_MaxSortOrder(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	max, err := repo.MaxSortOrder(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if max != 0 {
		t.Errorf("max with no siblings = %d, want 0", max)
	}

	parentID := "p"
	if err := repo.Save(ctx, testCategory("p", "Parent", "parent", nil, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, testCategory("c", "Child", "parent-child", &parentID, 7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	max, err = repo.MaxSortOrder(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if max != 5 {
		t.Errorf("top-level max = %d, want 5", max)
	}

	max, err = repo.MaxSortOrder(ctx, &parentID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if max != 7 {
		t.Errorf("sibling max = %d, want 7", max)
	}
}

func TestCategoryRepository_UpdateAndDelete(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	if err := repo.Save(ctx, testCategory("c1", "Old", "old", nil, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	desc := "beskrivning"
	if err := repo.Update(ctx, "c1", "New", &desc, time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "New" || got.Description == nil || *got.Description != desc {
		t.Errorf("update not applied: %+v", got)
	}

	if err := repo.Update(ctx, "missing", "X", nil, time.Now().UTC()); !errors.Is(err, ErrNotFound) {
		t.Errorf("updating an unknown id: expected ErrNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = repo.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("category still present after delete: %+v", got)
	}
}

func TestCategoryRepository_CountChildren(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	parentID := "p"
	if err := repo.Save(ctx, testCategory("p", "Parent", "parent", nil, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, id := range []string{"a", "b"} {
		if err := repo.Save(ctx, testCategory(id, id, "parent-"+id, &parentID, i+1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	n, err := repo.CountChildren(ctx, "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("children = %d, want 2", n)
	}
}
