package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/data"
	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/markdown"
	"go-intranet-app/internal/storage"
)

// DocumentRepository defines the interface for database operations on
// documents.
type DocumentRepository interface {
	List(ctx context.Context, categoryID *string) ([]*data.Document, error)
	Recent(ctx context.Context, limit int) ([]*data.Document, error)
	GetByID(ctx context.Context, id string) (*data.Document, error)
	FindByStoragePath(ctx context.Context, storagePath string) (*data.Document, error)
	Insert(ctx context.Context, document *data.Document) error
	Refresh(ctx context.Context, id, url string, updatedAt time.Time) error
	UpdateCategory(ctx context.Context, id string, categoryID *string, updatedAt time.Time) error
	UpdateTitle(ctx context.Context, id, title string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}

// signFanOutLimit caps the number of concurrent signed-URL resolutions for
// one listing.
const signFanOutLimit = 8

// UploadInput describes a single-file admin upload.
type UploadInput struct {
	File        io.Reader
	Size        int64
	Filename    string
	Title       string
	Description *string
	CategoryID  *string
	IsPublic    bool
}

// BatchFile is one file of a drag-and-drop batch.
type BatchFile struct {
	Name    string
	Content io.Reader
	Size    int64
}

// DeleteResult reports the outcome of a document deletion. StorageWarning
// is set when the owned object could not be removed; the record is deleted
// regardless, so the warning is observable but never blocks the delete.
type DeleteResult struct {
	StorageWarning error
}

// DocumentService provides business logic for documents, including storage
// object lifecycle and signed-URL resolution.
type DocumentService struct {
	repo         DocumentRepository
	store        storage.ObjectStore
	cache        *cache.Store
	render       *markdown.Renderer
	log          logger.Logger
	timeout      time.Duration
	signedURLTTL time.Duration
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(repo DocumentRepository, store storage.ObjectStore, qc *cache.Store, render *markdown.Renderer, log logger.Logger, timeout, signedURLTTL time.Duration) *DocumentService {
	if signedURLTTL <= 0 {
		signedURLTTL = time.Hour
	}
	return &DocumentService{
		repo:         repo,
		store:        store,
		cache:        qc,
		render:       render,
		log:          log,
		timeout:      timeout,
		signedURLTTL: signedURLTTL,
	}
}

// List returns documents newest first, optionally filtered to one category,
// each joined with its category name/slug and carrying a fresh signed URL
// when it owns a storage object. Served from the query cache until a
// document mutation invalidates it.
func (s *DocumentService) List(ctx context.Context, categoryID *string) ([]*data.Document, error) {
	return cache.Get(ctx, s.cache, cache.KeyDocuments(categoryID), func(ctx context.Context) ([]*data.Document, error) {
		documents, err := s.repo.List(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		s.finish(ctx, documents)
		return documents, nil
	})
}

// Recent returns the most recently created documents across all categories.
func (s *DocumentService) Recent(ctx context.Context, limit int) ([]*data.Document, error) {
	return cache.Get(ctx, s.cache, cache.KeyRecentDocuments(limit), func(ctx context.Context) ([]*data.Document, error) {
		documents, err := s.repo.Recent(ctx, limit)
		if err != nil {
			return nil, err
		}
		s.finish(ctx, documents)
		return documents, nil
	})
}

// finish resolves signed URLs and renders descriptions for a freshly
// fetched listing. Signed-URL resolution fans out concurrently across rows
// and the listing is not ready until every row resolved or failed; a row
// whose signing fails keeps its stored URL rather than failing the listing.
func (s *DocumentService) finish(ctx context.Context, documents []*data.Document) {
	g := new(errgroup.Group)
	g.SetLimit(signFanOutLimit)
	for _, doc := range documents {
		if doc.Description != nil {
			doc.DescriptionHTML = s.render.Render(*doc.Description)
		}
		if doc.StoragePath == nil {
			continue
		}
		doc := doc
		g.Go(func() error {
			signed, err := s.store.SignedURL(ctx, *doc.StoragePath, s.signedURLTTL)
			if err != nil {
				s.log.With(map[string]interface{}{"document": doc.ID, "path": *doc.StoragePath}).
					Warn("signed url resolution failed, keeping stored url")
				return nil
			}
			doc.URL = signed
			return nil
		})
	}
	_ = g.Wait()
}

// Get returns one document by id, bypassing the listing cache.
func (s *DocumentService) Get(ctx context.Context, id string) (*data.Document, error) {
	document, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, fmt.Errorf("%w: document %s", ErrNotFound, id)
	}
	return document, nil
}

// Upload stores a new file and inserts its document record. A failed object
// write leaves no partial record behind.
func (s *DocumentService) Upload(ctx context.Context, in UploadInput) (*data.Document, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: document title must not be empty", ErrValidation)
	}

	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	// Timestamped path keeps repeated uploads of the same file name from
	// colliding.
	path := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(in.Filename))
	if err := s.store.Upload(ctx, path, in.File, in.Size, storage.ContentTypeForName(in.Filename)); err != nil {
		return nil, wrapRepoErr(fmt.Errorf("%w: %v", ErrStorage, err))
	}

	now := time.Now()
	document := &data.Document{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  in.Description,
		DocumentType: string(TypeFromFilename(in.Filename)),
		CategoryID:   in.CategoryID,
		IsExternal:   false,
		StoragePath:  &path,
		URL:          s.store.PublicURL(path),
		IsNew:        true,
		IsPublic:     in.IsPublic,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, document); err != nil {
		return nil, wrapRepoErr(err)
	}
	s.cache.Invalidate(cache.PrefixDocuments)
	return document, nil
}

// CreateLink inserts a document that references an external URL and owns no
// storage object.
func (s *DocumentService) CreateLink(ctx context.Context, title, url string, description *string, categoryID *string, isPublic bool) (*data.Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: document title must not be empty", ErrValidation)
	}
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: link url must not be empty", ErrValidation)
	}

	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	now := time.Now()
	document := &data.Document{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		DocumentType: string(TypeLink),
		CategoryID:   categoryID,
		IsExternal:   true,
		URL:          url,
		IsNew:        true,
		IsPublic:     isPublic,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, document); err != nil {
		return nil, wrapRepoErr(err)
	}
	s.cache.Invalidate(cache.PrefixDocuments)
	return document, nil
}

// UploadOrReplace handles the drag-and-drop admin path: each file is
// upserted into storage under {categorySlug}/{sanitized name}, and the
// document record is matched by storage_path. An existing record is
// refreshed in place, keeping its identity; an unknown path gets a new
// record.
func (s *DocumentService) UploadOrReplace(ctx context.Context, files []BatchFile, categorySlug, categoryID string) ([]*data.Document, error) {
	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	// A record is only appended to out after its database write succeeded,
	// so listings must be invalidated even when a later file in the batch
	// fails and cuts the loop short.
	var out []*data.Document
	defer func() {
		if len(out) > 0 {
			s.cache.Invalidate(cache.PrefixDocuments)
		}
	}()

	for _, f := range files {
		path := categorySlug + "/" + SanitizeFilename(f.Name)
		if err := s.store.Upload(ctx, path, f.Content, f.Size, storage.ContentTypeForName(f.Name)); err != nil {
			return out, wrapRepoErr(fmt.Errorf("%w: %s: %v", ErrStorage, f.Name, err))
		}

		existing, err := s.repo.FindByStoragePath(ctx, path)
		if err != nil {
			return out, wrapRepoErr(err)
		}

		now := time.Now()
		url := s.store.PublicURL(path)
		if existing != nil {
			if err := s.repo.Refresh(ctx, existing.ID, url, now); err != nil {
				return out, wrapRepoErr(err)
			}
			existing.URL = url
			existing.IsNew = true
			existing.UpdatedAt = now
			out = append(out, existing)
			continue
		}

		document := &data.Document{
			ID:           uuid.NewString(),
			Title:        titleFromFilename(f.Name),
			DocumentType: string(TypeFromFilename(f.Name)),
			CategoryID:   &categoryID,
			IsExternal:   false,
			StoragePath:  &path,
			URL:          url,
			IsNew:        true,
			IsPublic:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.repo.Insert(ctx, document); err != nil {
			return out, wrapRepoErr(err)
		}
		out = append(out, document)
	}

	return out, nil
}

// Move reassigns a document to another category (nil uncategorizes it).
// Whether the target category exists is left to the backend's referential
// behavior.
func (s *DocumentService) Move(ctx context.Context, id string, categoryID *string) error {
	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	if err := s.repo.UpdateCategory(ctx, id, categoryID, time.Now()); err != nil {
		return wrapRepoErr(err)
	}
	// Both the per-category listings and the recent listing shift.
	s.cache.Invalidate(cache.PrefixDocuments)
	return nil
}

// Rename changes a document's title.
func (s *DocumentService) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: document title must not be empty", ErrValidation)
	}

	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	if err := s.repo.UpdateTitle(ctx, id, title, time.Now()); err != nil {
		return wrapRepoErr(err)
	}
	s.cache.Invalidate(cache.PrefixDocuments)
	return nil
}

// Delete removes a document. When the document owns a storage object its
// removal is attempted first; a removal failure is reported as a non-fatal
// warning on the result while the record is deleted regardless. An orphaned
// object must never block a user-visible delete, and a missing object must
// never resurface in listings.
func (s *DocumentService) Delete(ctx context.Context, id string, storagePath *string) (*DeleteResult, error) {
	ctx, cancel := boundCtx(ctx, s.timeout)
	defer cancel()

	result := &DeleteResult{}
	if storagePath != nil && *storagePath != "" {
		if err := s.store.Remove(ctx, *storagePath); err != nil {
			result.StorageWarning = fmt.Errorf("%w: removing %s: %v", ErrStorage, *storagePath, err)
			s.log.With(map[string]interface{}{"document": id, "path": *storagePath}).
				Warn("storage object removal failed, deleting record anyway")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return result, wrapRepoErr(err)
	}
	s.cache.Invalidate(cache.PrefixDocuments)
	return result, nil
}

func titleFromFilename(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
