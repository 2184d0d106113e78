//go:build integration

package data

import (
	"context"
	"testing"
	"time"
)

func TestSiteSettingRepository_SetUpserts(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewSiteSettingRepository(db)
	ctx := context.Background()

	if err := repo.Set(ctx, "days_without_accidents", "12", time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Set(ctx, "days_without_accidents", "13", time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d settings, want 1 (upsert, not duplicate)", len(all))
	}
	if all[0].Value != "13" {
		t.Errorf("value = %q, want the replacement", all[0].Value)
	}
}
