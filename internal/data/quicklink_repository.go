package data

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// QuickLinkRepository handles database operations for quick links.
type QuickLinkRepository struct {
	db *sqlx.DB
}

// NewQuickLinkRepository creates a new QuickLinkRepository.
func NewQuickLinkRepository(db *sqlx.DB) *QuickLinkRepository {
	return &QuickLinkRepository{db: db}
}

// GetAll retrieves all quick links ordered by sort_order ascending.
func (r *QuickLinkRepository) GetAll(ctx context.Context) ([]*QuickLink, error) {
	var links []*QuickLink
	query := `SELECT id, title, url, icon, sort_order FROM quick_links ORDER BY sort_order ASC`
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, fmt.Errorf("failed to get quick links: %w", err)
	}
	return links, nil
}
