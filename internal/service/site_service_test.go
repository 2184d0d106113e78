package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/data"
)

type fakeQuickLinkRepo struct {
	links []*data.QuickLink
	calls int
}

func (f *fakeQuickLinkRepo) GetAll(ctx context.Context) ([]*data.QuickLink, error) {
	f.calls++
	return f.links, nil
}

type fakeSiteSettingRepo struct {
	settings map[string]string
	calls    int
}

func (f *fakeSiteSettingRepo) GetAll(ctx context.Context) ([]*data.SiteSetting, error) {
	f.calls++
	var out []*data.SiteSetting
	for k, v := range f.settings {
		out = append(out, &data.SiteSetting{Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSiteSettingRepo) Set(ctx context.Context, key, value string, updatedAt time.Time) error {
	if f.settings == nil {
		f.settings = map[string]string{}
	}
	f.settings[key] = value
	return nil
}

func TestSiteService_SettingsCachedUntilWrite(t *testing.T) {
	settings := &fakeSiteSettingRepo{settings: map[string]string{
		SettingDaysWithoutAccidents: "12",
	}}
	svc := NewSiteService(&fakeQuickLinkRepo{}, settings, cache.New(time.Second), newTestLogger(), time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := svc.Settings(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[SettingDaysWithoutAccidents] != "12" {
			t.Errorf("counter = %q, want 12", got[SettingDaysWithoutAccidents])
		}
	}
	if settings.calls != 1 {
		t.Errorf("repo reads = %d, want 1", settings.calls)
	}

	if err := svc.SetSetting(ctx, SettingDaysWithoutAccidents, "13"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.Settings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[SettingDaysWithoutAccidents] != "13" {
		t.Errorf("counter after write = %q, want 13", got[SettingDaysWithoutAccidents])
	}
	if settings.calls != 2 {
		t.Errorf("repo reads after write = %d, want 2", settings.calls)
	}
}

func TestSiteService_SetSettingRejectsEmptyKey(t *testing.T) {
	svc := NewSiteService(&fakeQuickLinkRepo{}, &fakeSiteSettingRepo{}, cache.New(time.Second), newTestLogger(), time.Second)

	if err := svc.SetSetting(context.Background(), "  ", "x"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestSiteService_QuickLinksCached(t *testing.T) {
	links := &fakeQuickLinkRepo{links: []*data.QuickLink{
		{ID: "q1", Title: "Tidrapportering", URL: "https://tid.example.com", SortOrder: 1},
	}}
	svc := NewSiteService(links, &fakeSiteSettingRepo{}, cache.New(time.Second), newTestLogger(), time.Second)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := svc.QuickLinks(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Title != "Tidrapportering" {
			t.Errorf("quick links = %v", got)
		}
	}
	if links.calls != 1 {
		t.Errorf("repo reads = %d, want 1", links.calls)
	}
}
