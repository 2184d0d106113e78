package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/data"
	"go-intranet-app/internal/logger"
)

// QuickLinkRepository defines the interface for database operations on
// quick links.
type QuickLinkRepository interface {
	GetAll(ctx context.Context) ([]*data.QuickLink, error)
}

// SiteSettingRepository defines the interface for database operations on
// site settings.
type SiteSettingRepository interface {
	GetAll(ctx context.Context) ([]*data.SiteSetting, error)
	Set(ctx context.Context, key, value string, updatedAt time.Time) error
}

// SettingDaysWithoutAccidents holds the start-page safety counter.
const SettingDaysWithoutAccidents = "days_without_accidents"

// SiteService serves the small site-wide content pieces: the quick-link
// strip and the key/value site settings.
type SiteService struct {
	quickLinks QuickLinkRepository
	settings   SiteSettingRepository
	cache      *cache.Store
	log        logger.Logger
	timeout    time.Duration
}

// NewSiteService creates a new SiteService.
func NewSiteService(quickLinks QuickLinkRepository, settings SiteSettingRepository, store *cache.Store, log logger.Logger, timeout time.Duration) *SiteService {
	return &SiteService{
		quickLinks: quickLinks,
		settings:   settings,
		cache:      store,
		log:        log,
		timeout:    timeout,
	}
}

// QuickLinks returns the link strip in sort order, served from the query
// cache.
func (s *SiteService) QuickLinks(ctx context.Context) ([]*data.QuickLink, error) {
	return cache.Get(ctx, s.cache, cache.KeyQuickLinks(), func(ctx context.Context) ([]*data.QuickLink, error) {
		return s.quickLinks.GetAll(ctx)
	})
}

// Settings returns all site settings as a key/value map, served from the
// query cache.
func (s *SiteService) Settings(ctx context.Context) (map[string]string, error) {
	return cache.Get(ctx, s.cache, cache.KeySiteSettings(), func(ctx context.Context) (map[string]string, error) {
		rows, err := s.settings.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		out := make(map[string]string, len(rows))
		for _, row := range rows {
			out[row.Key] = row.Value
		}
		return out, nil
	})
}

// SetSetting upserts one setting and drops the cached settings map.
func (s *SiteService) SetSetting(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: setting key must not be empty", ErrValidation)
	}

	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	if err := s.settings.Set(ctx, key, value, time.Now()); err != nil {
		return wrapRepoErr(err)
	}
	s.cache.Invalidate(cache.PrefixSiteSettings)
	return nil
}
