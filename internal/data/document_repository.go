package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DocumentRepository handles database operations for documents.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = `d.id, d.title, d.description, d.tags, d.document_type, d.category_id,
	d.is_external, d.storage_path, d.url, d.is_new, d.is_public, d.created_at, d.updated_at,
	c.name AS category_name, c.slug AS category_slug`

const documentSelect = `SELECT ` + documentColumns + `
	FROM documents d
	LEFT JOIN categories c ON c.id = d.category_id`

// List retrieves documents ordered by created_at descending, optionally
// filtered to a single category. Each row carries the owning category's
// name and slug.
func (r *DocumentRepository) List(ctx context.Context, categoryID *string) ([]*Document, error) {
	var documents []*Document
	var err error
	if categoryID == nil {
		err = r.db.SelectContext(ctx, &documents, documentSelect+` ORDER BY d.created_at DESC`)
	} else {
		err = r.db.SelectContext(ctx, &documents, documentSelect+` WHERE d.category_id = ? ORDER BY d.created_at DESC`, *categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

// Recent retrieves the most recently created documents across all
// categories, truncated to limit.
func (r *DocumentRepository) Recent(ctx context.Context, limit int) ([]*Document, error) {
	var documents []*Document
	query := documentSelect + ` ORDER BY d.created_at DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &documents, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent documents: %w", err)
	}
	return documents, nil
}

// GetByID finds a document by its ID. A miss is not an error.
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*Document, error) {
	var document Document
	if err := r.db.GetContext(ctx, &document, documentSelect+` WHERE d.id = ?`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by id: %w", err)
	}
	return &document, nil
}

// FindByStoragePath finds the document owning the given storage object.
// storage_path is the identity key for owned objects, so this is how the
// drag-and-drop upsert decides between insert and replace.
func (r *DocumentRepository) FindByStoragePath(ctx context.Context, storagePath string) (*Document, error) {
	var document Document
	if err := r.db.GetContext(ctx, &document, documentSelect+` WHERE d.storage_path = ?`, storagePath); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by storage path: %w", err)
	}
	return &document, nil
}

// Insert stores a new document record.
func (r *DocumentRepository) Insert(ctx context.Context, document *Document) error {
	query := `INSERT INTO documents (id, title, description, tags, document_type, category_id,
	          is_external, storage_path, url, is_new, is_public, created_at, updated_at)
	          VALUES (:id, :title, :description, :tags, :document_type, :category_id,
	          :is_external, :storage_path, :url, :is_new, :is_public, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, document); err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// Refresh updates an existing record in place after its storage object was
// replaced, preserving the document's identity.
func (r *DocumentRepository) Refresh(ctx context.Context, id, url string, updatedAt time.Time) error {
	query := `UPDATE documents SET url = ?, is_new = ?, updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, url, true, updatedAt, id); err != nil {
		return fmt.Errorf("failed to refresh document: %w", err)
	}
	return nil
}

// UpdateCategory moves a document into another category (nil uncategorizes it).
func (r *DocumentRepository) UpdateCategory(ctx context.Context, id string, categoryID *string, updatedAt time.Time) error {
	query := `UPDATE documents SET category_id = ?, updated_at = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, categoryID, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to move document: %w", err)
	}
	return requireRow(result, id)
}

// UpdateTitle renames a document.
func (r *DocumentRepository) UpdateTitle(ctx context.Context, id, title string, updatedAt time.Time) error {
	query := `UPDATE documents SET title = ?, updated_at = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, title, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to rename document: %w", err)
	}
	return requireRow(result, id)
}

// Delete removes a document record.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// CountByCategory returns the number of documents referencing a category.
func (r *DocumentRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM documents WHERE category_id = ?`, categoryID); err != nil {
		return 0, fmt.Errorf("failed to count documents in category: %w", err)
	}
	return count, nil
}

func requireRow(result sql.Result, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: document %s", ErrNotFound, id)
	}
	return nil
}
