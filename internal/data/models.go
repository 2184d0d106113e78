package data

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"html/template"
	"time"
)

// Tags is an optional set of free-form labels on a document, stored as a
// JSON array in a single column.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src interface{}) error {
	if src == nil {
		*t = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into Tags", src)
	}
}

// Category represents a named folder node in the category tree.
// ParentID is nil for top-level categories.
type Category struct {
	ID              string        `db:"id" json:"id"`
	Name            string        `db:"name" json:"name"`
	Slug            string        `db:"slug" json:"slug"`
	ParentID        *string       `db:"parent_id" json:"parent_id"`
	Description     *string       `db:"description" json:"description"`
	DescriptionHTML template.HTML `db:"-" json:"description_html,omitempty"`
	SortOrder       int           `db:"sort_order" json:"sort_order"`
	IsPublic        bool          `db:"is_public" json:"is_public"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// Document represents a titled reference to either an uploaded storage
// object or an external URL.
type Document struct {
	ID              string        `db:"id" json:"id"`
	Title           string        `db:"title" json:"title"`
	Description     *string       `db:"description" json:"description"`
	DescriptionHTML template.HTML `db:"-" json:"description_html,omitempty"`
	Tags            Tags          `db:"tags" json:"tags"`
	DocumentType    string        `db:"document_type" json:"document_type"`
	CategoryID      *string       `db:"category_id" json:"category_id"`
	IsExternal      bool          `db:"is_external" json:"is_external"`
	StoragePath     *string       `db:"storage_path" json:"storage_path"`
	URL             string        `db:"url" json:"url"`
	IsNew           bool          `db:"is_new" json:"is_new"`
	IsPublic        bool          `db:"is_public" json:"is_public"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`

	// Joined projection of the owning category, nil when uncategorized.
	CategoryName *string `db:"category_name" json:"category_name"`
	CategorySlug *string `db:"category_slug" json:"category_slug"`
}

// QuickLink is a pinned shortcut shown on the start page.
type QuickLink struct {
	ID        string `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	URL       string `db:"url" json:"url"`
	Icon      string `db:"icon" json:"icon"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

// SiteSetting is a single key/value row, e.g. the safety counter.
type SiteSetting struct {
	Key       string    `db:"setting_key" json:"key"`
	Value     string    `db:"setting_value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User is an intranet account. Admins may mutate content.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
