package data

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SiteSettingRepository handles database operations for site settings.
type SiteSettingRepository struct {
	db *sqlx.DB
}

// NewSiteSettingRepository creates a new SiteSettingRepository.
func NewSiteSettingRepository(db *sqlx.DB) *SiteSettingRepository {
	return &SiteSettingRepository{db: db}
}

// GetAll retrieves every setting row.
func (r *SiteSettingRepository) GetAll(ctx context.Context) ([]*SiteSetting, error) {
	var settings []*SiteSetting
	query := `SELECT setting_key, setting_value, updated_at FROM site_settings`
	if err := r.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return settings, nil
}

// Set upserts a single setting.
func (r *SiteSettingRepository) Set(ctx context.Context, key, value string, updatedAt time.Time) error {
	query := `REPLACE INTO site_settings (setting_key, setting_value, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, key, value, updatedAt); err != nil {
		return fmt.Errorf("failed to set site setting %q: %w", key, err)
	}
	return nil
}
