package service

import "errors"

// Domain errors. Validation and invariant errors are raised before any
// backend call is attempted; the error middleware maps them to HTTP codes.
var (
	// ErrValidation marks an empty required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an id or slug lookup miss on a mutation path.
	// Read paths represent absence as an empty result instead.
	ErrNotFound = errors.New("not found")
	// ErrCategoryNotEmpty blocks deleting a category that still has documents.
	ErrCategoryNotEmpty = errors.New("category still contains documents")
	// ErrCategoryHasChildren blocks deleting a category with subcategories.
	ErrCategoryHasChildren = errors.New("category still contains subcategories")
	// ErrStorage marks a failed object write or removal.
	ErrStorage = errors.New("storage operation failed")
	// ErrCycleDetected marks a malformed parent chain in the category tree.
	ErrCycleDetected = errors.New("category parent chain contains a cycle")
)
