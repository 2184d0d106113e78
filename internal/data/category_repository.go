package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// CategoryRepository handles database operations for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `id, name, slug, parent_id, description, sort_order, is_public, created_at, updated_at`

// GetAll retrieves all categories ordered by sort_order ascending.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*Category, error) {
	var categories []*Category
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY sort_order ASC`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetBySlug finds a category by its slug. A miss is not an error.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = ?`
	if err := r.db.GetContext(ctx, &category, query, slug); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}
	return &category, nil
}

// GetByID finds a category by its ID. A miss is not an error.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	var category Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}
	return &category, nil
}

// MaxSortOrder returns the highest sort_order among the siblings sharing the
// given parent, or 0 when there are none.
func (r *CategoryRepository) MaxSortOrder(ctx context.Context, parentID *string) (int, error) {
	var max int
	var err error
	if parentID == nil {
		err = r.db.GetContext(ctx, &max, `SELECT COALESCE(MAX(sort_order), 0) FROM categories WHERE parent_id IS NULL`)
	} else {
		err = r.db.GetContext(ctx, &max, `SELECT COALESCE(MAX(sort_order), 0) FROM categories WHERE parent_id = ?`, *parentID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get max sibling sort_order: %w", err)
	}
	return max, nil
}

// Save inserts a new category.
func (r *CategoryRepository) Save(ctx context.Context, category *Category) error {
	query := `INSERT INTO categories (id, name, slug, parent_id, description, sort_order, is_public, created_at, updated_at)
	          VALUES (:id, :name, :slug, :parent_id, :description, :sort_order, :is_public, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, category); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// Update renames a category and/or changes its description.
func (r *CategoryRepository) Update(ctx context.Context, id, name string, description *string, updatedAt time.Time) error {
	query := `UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, name, description, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: category %s", ErrNotFound, id)
	}
	return nil
}

// Delete removes a category. Emptiness checks belong to the service layer
// and must run before this call.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// CountChildren returns the number of categories whose parent is the given
// category.
func (r *CategoryRepository) CountChildren(ctx context.Context, id string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories WHERE parent_id = ?`, id); err != nil {
		return 0, fmt.Errorf("failed to count subcategories: %w", err)
	}
	return count, nil
}
